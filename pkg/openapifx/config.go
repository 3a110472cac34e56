package openapifx

type Config struct {
	Enabled bool
	// Host and base path shown in the document, defaults are kept when empty
	PublicHost string
	PublicPath string
}
