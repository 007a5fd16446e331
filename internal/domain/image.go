package domain

type ImageType string

const (
	ImageTypeICO  ImageType = "ICO"
	ImageTypeCUR  ImageType = "CUR"
	ImageTypePNG  ImageType = "PNG"
	ImageTypeJPEG ImageType = "JPEG"
	ImageTypeGIF  ImageType = "GIF"
	ImageTypeBMP  ImageType = "BMP"
	ImageTypeWEBP ImageType = "WEBP"
)

// ImageDescriptor is a probed icon. Values are never mutated after creation.
type ImageDescriptor struct {
	URL         string    `json:"url"`
	Type        ImageType `json:"type"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	ContentType string    `json:"content_type,omitempty"`
}

func (d ImageDescriptor) Area() int {
	return d.Width * d.Height
}
