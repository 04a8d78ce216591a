package models

// HaircutEmbedding links a hosted haircut example image to its embedding
// vector, used for similarity search over uploaded reference pictures.
type HaircutEmbedding struct {
	ID       string    `bson:"_id,omitempty" json:"_id"`
	BarberID string    `bson:"barber_id" json:"barber_id"`
	Image    string    `bson:"image" json:"image"` // hosted image public ID
	Vector   []float32 `bson:"embedding" json:"-"`
}
