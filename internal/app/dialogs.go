package app

import (
	"errors"

	"github.com/sqweek/dialog"
)

// imageExtensions lists the formats terrain.DecodeImage understands.
var imageExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "tif", "tiff", "webp", "tga"}

// nativeDialogs shows OS file pickers and message boxes.
type nativeDialogs struct{}

func (nativeDialogs) OpenImage() (string, error) {
	path, err := dialog.File().
		Filter("Images", imageExtensions...).
		Title("Open heightmap").
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	return path, err
}

func (nativeDialogs) ShowError(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}
