package ports

// Slot is one named blob in a storage backend (file, bbolt, SQLite, memory).
// Read returns an error of kind domain.KindNotFound when nothing is stored.
type Slot interface {
	Read() ([]byte, error)
	Write(payload []byte) error
	Delete() error
}
