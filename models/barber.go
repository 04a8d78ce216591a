package models

// Barber represents a barber profile. Barber records are owned by the
// backend; the client side treats them as read-only.
type Barber struct {
	ID            string   `bson:"_id,omitempty" json:"_id"`
	Name          string   `bson:"name" json:"name"`
	Hairstyles    []string `bson:"hairstyles" json:"hairstyles"`
	Rating        float64  `bson:"rating" json:"rating"`
	Gender        string   `bson:"gender" json:"gender"`
	Dorm          string   `bson:"dorm" json:"dorm"`
	Neighborhood  string   `bson:"neighborhood" json:"neighborhood"`
	WillTravel    bool     `bson:"will-travel" json:"will-travel"`
	Biography     string   `bson:"biography" json:"biography"`
	Cost          float64  `bson:"cost" json:"cost"`
	ExampleImages []string `bson:"example_images" json:"example_images"`
	ProfileImage  string   `bson:"profile_image" json:"profile_image"`
}

// Filter defaults. A filter at its default value is omitted from search
// requests so the backend can apply its own default semantics.
const (
	DefaultMinRating = 0
	DefaultMaxCost   = 100
	DefaultGender    = "all"
)

// BarberFilter holds the active directory filter set.
type BarberFilter struct {
	Name      string
	MinRating float64
	MaxCost   float64
	Gender    string

	// Extended criteria supported by the backend query.
	Hairstyle    string
	Neighborhood string
	WillTravel   *bool
}

// DefaultBarberFilter returns a filter with every criterion at its
// "no constraint" default.
func DefaultBarberFilter() BarberFilter {
	return BarberFilter{
		MinRating: DefaultMinRating,
		MaxCost:   DefaultMaxCost,
		Gender:    DefaultGender,
	}
}
