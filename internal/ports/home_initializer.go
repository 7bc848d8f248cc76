package ports

type HomeInitializer interface {
	Init(home string, force bool) error
}
