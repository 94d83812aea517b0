package book

import "fmt"

// DigitalAttrs is the construction input of a DigitalEdition.
type DigitalAttrs struct {
	Attrs
	FileFormat   string  `json:"file_format" validate:"notblank"`
	FileSizeMB   float64 `json:"file_size_mb" validate:"gt=0,finite"`
	DRMProtected bool    `json:"drm_protected"`
}

// DigitalEdition is an e-book.
type DigitalEdition struct {
	Book
	fileFormat   string
	fileSizeMB   float64
	drmProtected bool
}

// NewDigitalEdition validates a and returns an e-book.
func NewDigitalEdition(a DigitalAttrs) (*DigitalEdition, error) {
	if err := validateStruct(a); err != nil {
		return nil, err
	}
	return &DigitalEdition{
		Book:         newBook(a.Attrs),
		fileFormat:   a.FileFormat,
		fileSizeMB:   a.FileSizeMB,
		drmProtected: a.DRMProtected,
	}, nil
}

func (d *DigitalEdition) Kind() Kind          { return KindDigital }
func (d *DigitalEdition) FileFormat() string  { return d.fileFormat }
func (d *DigitalEdition) FileSizeMB() float64 { return d.fileSizeMB }
func (d *DigitalEdition) DRMProtected() bool  { return d.drmProtected }

// Download simulates fetching the file. No I/O happens.
func (d *DigitalEdition) Download() string {
	return fmt.Sprintf("Downloading '%s' in %s format... Done!", d.title, d.fileFormat)
}

func (d *DigitalEdition) Describe() string {
	drm := "DRM free"
	if d.drmProtected {
		drm = "DRM protected"
	}
	return fmt.Sprintf("%s It is an e-book in %s format, %sMB, %s.",
		d.Book.Describe(), d.fileFormat, formatFloat(d.fileSizeMB), drm)
}

func (d *DigitalEdition) String() string {
	drm := "Not Protected"
	if d.drmProtected {
		drm = "Protected"
	}
	return fmt.Sprintf("%s [E-Book: %s, %sMB, DRM: %s]", d.Book.String(), d.fileFormat, formatFloat(d.fileSizeMB), drm)
}

func (d *DigitalEdition) GoString() string {
	return fmt.Sprintf("DigitalEdition(%s, file_format=%q, file_size_mb=%s, drm_protected=%t)",
		d.fields(), d.fileFormat, formatFloat(d.fileSizeMB), d.drmProtected)
}
