package models

var DestinationCategories = []string{
	"Cultural", "Beach", "Mountain", "Wildlife",
	"Historical", "Religious", "Adventure", "City",
}

type Location struct {
	City        string      `bson:"city" json:"city"`
	Region      string      `bson:"region" json:"region"`
	Country     string      `bson:"country" json:"country"`
	Coordinates Coordinates `bson:"coordinates" json:"coordinates"`
}

type Attraction struct {
	Name        string      `bson:"name" json:"name"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	Image       string      `bson:"image,omitempty" json:"image,omitempty"`
	Coordinates Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

type TemperatureRange struct {
	Min float64 `bson:"min,omitempty" json:"min,omitempty"`
	Max float64 `bson:"max,omitempty" json:"max,omitempty"`
}

type Weather struct {
	Temperature TemperatureRange `bson:"temperature,omitempty" json:"temperature,omitempty"`
	Rainfall    string           `bson:"rainfall,omitempty" json:"rainfall,omitempty"`
	Humidity    string           `bson:"humidity,omitempty" json:"humidity,omitempty"`
}

type Accommodation struct {
	Luxury   bool `bson:"luxury" json:"luxury"`
	MidRange bool `bson:"midRange" json:"midRange"`
	Budget   bool `bson:"budget" json:"budget"`
	Camping  bool `bson:"camping" json:"camping"`
}

type Transportation struct {
	ByAir   bool `bson:"byAir" json:"byAir"`
	ByTrain bool `bson:"byTrain" json:"byTrain"`
	ByBus   bool `bson:"byBus" json:"byBus"`
	ByCar   bool `bson:"byCar" json:"byCar"`
}

type Destination struct {
	DestinationID    string         `bson:"destinationid,omitempty" json:"destinationid"`
	Name             string         `bson:"name" json:"name"`
	Slug             string         `bson:"slug" json:"slug"`
	Description      string         `bson:"description" json:"description"`
	ShortDescription string         `bson:"shortDescription" json:"shortDescription"`
	Location         Location       `bson:"location" json:"location"`
	Geo              GeoPoint       `bson:"geo,omitempty" json:"-"`
	Images           []Image        `bson:"images,omitempty" json:"images,omitempty"`
	Category         string         `bson:"category" json:"category"`
	Highlights       []string       `bson:"highlights,omitempty" json:"highlights,omitempty"`
	Attractions      []Attraction   `bson:"attractions,omitempty" json:"attractions,omitempty"`
	BestTimeToVisit  string         `bson:"bestTimeToVisit,omitempty" json:"bestTimeToVisit,omitempty"`
	Weather          Weather        `bson:"weather,omitempty" json:"weather,omitempty"`
	Activities       []string       `bson:"activities,omitempty" json:"activities,omitempty"`
	Accommodation    Accommodation  `bson:"accommodation,omitempty" json:"accommodation,omitempty"`
	Transportation   Transportation `bson:"transportation,omitempty" json:"transportation,omitempty"`
	Tips             []string       `bson:"tips,omitempty" json:"tips,omitempty"`
	Status           string         `bson:"status" json:"status"`
	Featured         bool           `bson:"featured" json:"featured"`
	Rating           Rating         `bson:"rating" json:"rating"`
	Meta             Meta           `bson:"meta,omitempty" json:"meta,omitempty"`
	Audit            `bson:",inline"`
}

type DestinationPatch struct {
	Name             *string         `json:"name,omitempty"`
	Slug             *string         `json:"slug,omitempty"`
	Description      *string         `json:"description,omitempty"`
	ShortDescription *string         `json:"shortDescription,omitempty"`
	Location         *Location       `json:"location,omitempty"`
	Category         *string         `json:"category,omitempty"`
	Highlights       *[]string       `json:"highlights,omitempty"`
	Attractions      *[]Attraction   `json:"attractions,omitempty"`
	BestTimeToVisit  *string         `json:"bestTimeToVisit,omitempty"`
	Weather          *Weather        `json:"weather,omitempty"`
	Activities       *[]string       `json:"activities,omitempty"`
	Accommodation    *Accommodation  `json:"accommodation,omitempty"`
	Transportation   *Transportation `json:"transportation,omitempty"`
	Tips             *[]string       `json:"tips,omitempty"`
	Status           *string         `json:"status,omitempty"`
	Featured         *bool           `json:"featured,omitempty"`
	Meta             *Meta           `json:"meta,omitempty"`
}
