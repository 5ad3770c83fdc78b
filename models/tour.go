package models

// Tour categories, fixed set.
var TourCategories = []string{
	"Cultural", "Adventure", "Beach", "Wildlife",
	"Luxury", "Family", "Honeymoon", "Budget",
}

var TourDifficulties = []string{"Easy", "Moderate", "Challenging", "Expert"}

var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

type ItineraryDay struct {
	Day         int      `bson:"day" json:"day"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Activities  []string `bson:"activities,omitempty" json:"activities,omitempty"`
}

type TourLocation struct {
	Name        string      `bson:"name" json:"name"`
	Coordinates Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

type Seasonality struct {
	BestTime        string   `bson:"bestTime,omitempty" json:"bestTime,omitempty"`
	AvailableMonths []string `bson:"availableMonths,omitempty" json:"availableMonths,omitempty"`
}

type TourPackage struct {
	TourID           string         `bson:"tourid,omitempty" json:"tourid"`
	Title            string         `bson:"title" json:"title"`
	Slug             string         `bson:"slug" json:"slug"`
	Description      string         `bson:"description" json:"description"`
	ShortDescription string         `bson:"shortDescription" json:"shortDescription"`
	Duration         string         `bson:"duration" json:"duration"`
	Price            float64        `bson:"price" json:"price"`
	OriginalPrice    float64        `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Images           []Image        `bson:"images,omitempty" json:"images,omitempty"`
	Highlights       []string       `bson:"highlights,omitempty" json:"highlights,omitempty"`
	Itinerary        []ItineraryDay `bson:"itinerary,omitempty" json:"itinerary,omitempty"`
	Included         []string       `bson:"included,omitempty" json:"included,omitempty"`
	Excluded         []string       `bson:"excluded,omitempty" json:"excluded,omitempty"`
	Category         string         `bson:"category" json:"category"`
	Difficulty       string         `bson:"difficulty" json:"difficulty"`
	MaxGroupSize     int            `bson:"maxGroupSize" json:"maxGroupSize"`
	MinAge           int            `bson:"minAge" json:"minAge"`
	Locations        []TourLocation `bson:"locations,omitempty" json:"locations,omitempty"`
	Seasonality      Seasonality    `bson:"seasonality,omitempty" json:"seasonality,omitempty"`
	Status           string         `bson:"status" json:"status"`
	Featured         bool           `bson:"featured" json:"featured"`
	Rating           Rating         `bson:"rating" json:"rating"`
	Meta             Meta           `bson:"meta,omitempty" json:"meta,omitempty"`
	Audit            `bson:",inline"`

	// Read-time derivations, never persisted.
	DiscountPercentage int `bson:"-" json:"discountPercentage"`
	PricePerDay        int `bson:"-" json:"pricePerDay"`
}

// TourPatch is the allow-listed partial update for a tour. Only non-nil
// fields are merged; anything outside this struct is rejected at decode.
type TourPatch struct {
	Title            *string         `json:"title,omitempty"`
	Slug             *string         `json:"slug,omitempty"`
	Description      *string         `json:"description,omitempty"`
	ShortDescription *string         `json:"shortDescription,omitempty"`
	Duration         *string         `json:"duration,omitempty"`
	Price            *float64        `json:"price,omitempty"`
	OriginalPrice    *float64        `json:"originalPrice,omitempty"`
	Highlights       *[]string       `json:"highlights,omitempty"`
	Itinerary        *[]ItineraryDay `json:"itinerary,omitempty"`
	Included         *[]string       `json:"included,omitempty"`
	Excluded         *[]string       `json:"excluded,omitempty"`
	Category         *string         `json:"category,omitempty"`
	Difficulty       *string         `json:"difficulty,omitempty"`
	MaxGroupSize     *int            `json:"maxGroupSize,omitempty"`
	MinAge           *int            `json:"minAge,omitempty"`
	Locations        *[]TourLocation `json:"locations,omitempty"`
	Seasonality      *Seasonality    `json:"seasonality,omitempty"`
	Status           *string         `json:"status,omitempty"`
	Featured         *bool           `json:"featured,omitempty"`
	Meta             *Meta           `json:"meta,omitempty"`
}
