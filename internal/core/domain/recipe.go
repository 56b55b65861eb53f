package domain

// PackageType describes what kind of artifact a recipe produces.
type PackageType string

const (
	// PackageApplication is a recipe producing executables.
	PackageApplication PackageType = "application"
	// PackageLibrary is a recipe producing a library.
	PackageLibrary PackageType = "library"
)

// Recipe holds the descriptive metadata of the packaged project.
type Recipe struct {
	Name        string      `json:"name" yaml:"name"`
	Version     string      `json:"version" yaml:"version"`
	PackageType PackageType `json:"package_type" yaml:"package_type"`
	License     string      `json:"license" yaml:"license"`
	Author      string      `json:"author" yaml:"author"`
	URL         string      `json:"url" yaml:"url"`
	Description string      `json:"description" yaml:"description"`
	Topics      []string    `json:"topics" yaml:"topics"`
}

// MiniModem returns the metadata of the minimodem recipe.
func MiniModem() Recipe {
	return Recipe{
		Name:        "mini_modem",
		Version:     "0.24-1",
		PackageType: PackageApplication,
		License:     "GPL-3.0-or-later",
		Author:      "kamal@whence.com",
		URL:         "http://www.whence.com/minimodem",
		Description: "general-purpose software audio FSK modem",
		Topics:      []string{"audio", "FSK", "modem"},
	}
}
