package handler

import (
	"fmt"
	"io"
	"mime/multipart"

	"renova/internal/service"
)

// readFormFile buffers one multipart file into memory. Uploads are small by
// contract (the hosting provider caps them at 2 MiB), so buffering is fine.
func readFormFile(header *multipart.FileHeader) (*service.UploadFile, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("opening form file %s: %w", header.Filename, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading form file %s: %w", header.Filename, err)
	}
	return &service.UploadFile{Filename: header.Filename, Data: data}, nil
}

// readFormFiles buffers every file submitted under one field, in form order.
func readFormFiles(headers []*multipart.FileHeader) ([]service.UploadFile, error) {
	files := make([]service.UploadFile, 0, len(headers))
	for _, h := range headers {
		f, err := readFormFile(h)
		if err != nil {
			return nil, err
		}
		files = append(files, *f)
	}
	return files, nil
}

// formValue returns a pointer to the first value of a form field, or nil when
// the field was absent. Distinguishes "not sent" from "sent empty" so partial
// updates leave untouched fields alone.
func formValue(form *multipart.Form, field string) *string {
	values, ok := form.Value[field]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
