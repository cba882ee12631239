package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3000"`
	// StaticDir is the directory holding the browser pages, served at /.
	StaticDir string `mapstructure:"static_dir" default:"./public"`
}
