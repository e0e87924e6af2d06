package assets

import (
	"os"

	"github.com/ThatOtherAndrew/learngl/internal/models"
)

// ReadSource returns the full contents of a text asset such as a GLSL file.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &models.ReadError{Path: path, Err: err}
	}
	return string(data), nil
}
