package routes

import (
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planetholiday/ratelim"
)

func lookupParams(t *testing.T, router *httprouter.Router, method, path string) httprouter.Params {
	t.Helper()
	handle, ps, _ := router.Lookup(method, path)
	require.NotNil(t, handle, "no route matches %s %s", method, path)
	return ps
}

func TestPublicRatingRoutesCarrySlug(t *testing.T) {
	router := httprouter.New()
	rl := ratelim.NewRateLimiter()
	AddTourRoutes(router, rl)
	AddDestinationRoutes(router, rl)

	ps := lookupParams(t, router, "POST", "/api/tours/tour/cultural-triangle-explorer/rating")
	assert.Equal(t, "cultural-triangle-explorer", ps.ByName("slug"))

	ps = lookupParams(t, router, "POST", "/api/destinations/destination/galle-fort/rating")
	assert.Equal(t, "galle-fort", ps.ByName("slug"))
}

func TestRemoveAttractionRouteCarriesName(t *testing.T) {
	router := httprouter.New()
	AddDestinationRoutes(router, ratelim.NewRateLimiter())

	ps := lookupParams(t, router, "DELETE", "/api/admin/destinations/abc123/attractions/Lighthouse")
	assert.Equal(t, "abc123", ps.ByName("id"))
	assert.Equal(t, "Lighthouse", ps.ByName("name"))
}
