package domain

type BBox struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

type Detection struct {
	Tile       string
	Confidence float64
	BBox       BBox
}

// ClassifiedDeck is one group of tiles recognised in an image, in the order
// the classifier reported them.
type ClassifiedDeck struct {
	Detections []Detection
}

// Image is a decoded, validated image ready for classification. Data keeps the
// original encoded bytes.
type Image struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

func CloneDecks(decks []ClassifiedDeck) []ClassifiedDeck {
	if decks == nil {
		return nil
	}

	cloned := make([]ClassifiedDeck, len(decks))
	for i, deck := range decks {
		cloned[i] = ClassifiedDeck{Detections: append([]Detection(nil), deck.Detections...)}
	}

	return cloned
}
