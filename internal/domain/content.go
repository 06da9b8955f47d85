package domain

type DestinationCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Coordinates are optional on the wire; either side may be missing.
type Coordinates struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (c Coordinates) Valid() bool { return c.Latitude != nil && c.Longitude != nil }

type Destination struct {
	ID             int64               `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Category       DestinationCategory `json:"category"`
	Location       string              `json:"location"`
	Coordinates    Coordinates         `json:"coordinates"`
	MapsURL        string              `json:"maps_url,omitempty"`
	Images         ImageList           `json:"images"`
	EntranceFee    string              `json:"entrance_fee,omitempty"`
	Facilities     []string            `json:"facilities,omitempty"`
	OperatingHours []string            `json:"operating_hours,omitempty"`
	ContactInfo    string              `json:"contact_info,omitempty"`
	IsActive       bool                `json:"is_active"`
	CreatedAt      string              `json:"created_at,omitempty"`
	UpdatedAt      string              `json:"updated_at,omitempty"`
}

func (d Destination) Key() int64 { return d.ID }

type Hotel struct {
	HotelID          int64      `json:"hotel_id"`
	Name             string     `json:"name"`
	Price            FlexString `json:"price"`
	Description      string     `json:"description"`
	Image            string     `json:"image,omitempty"`
	Images           ImageList  `json:"images"`
	BookURL          string     `json:"book_url,omitempty"`
	MapsURL          string     `json:"maps_url,omitempty"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        string     `json:"created_at,omitempty"`
	UpdatedAt        string     `json:"updated_at,omitempty"`
	TotalRating      float64    `json:"total_rating"`
	TotalRatingUsers int        `json:"total_rating_users"`
}

func (h Hotel) Key() int64 { return h.HotelID }

// Cover is the first usable image, preferring the gallery over the legacy field.
func (h Hotel) Cover() string {
	if len(h.Images) > 0 {
		return h.Images[0]
	}
	return h.Image
}

type PackageDestination struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type Package struct {
	PackageID          int64                `json:"package_id"`
	Name               string               `json:"name"`
	Description        string               `json:"description,omitempty"`
	Price              FlexString           `json:"price"`
	Image              string               `json:"image,omitempty"`
	ImageURL           *string              `json:"image_url"`
	IsActive           bool                 `json:"is_active"`
	TotalRating        float64              `json:"total_rating"`
	TotalRatingUsers   int                  `json:"total_rating_users"`
	Destinations       []PackageDestination `json:"destinations,omitempty"`
	DestinationDetails []PackageDestination `json:"destination_details,omitempty"`
	CreatedAt          string               `json:"created_at,omitempty"`
	UpdatedAt          string               `json:"updated_at,omitempty"`
}

func (p Package) Key() int64 { return p.PackageID }

// Included returns destination_details when the API sent them, else destinations.
func (p Package) Included() []PackageDestination {
	if len(p.DestinationDetails) > 0 {
		return p.DestinationDetails
	}
	return p.Destinations
}

func (p Package) Cover() string {
	if p.ImageURL != nil && *p.ImageURL != "" {
		return *p.ImageURL
	}
	return p.Image
}

type Article struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	FeaturedImage    string   `json:"featured_image,omitempty"`
	FeaturedImageURL string   `json:"featured_image_url,omitempty"`
	Category         int64    `json:"category"`
	CategoryName     string   `json:"category_name,omitempty"`
	Tags             string   `json:"tags,omitempty"`
	TagsList         []string `json:"tags_list,omitempty"`
	Status           string   `json:"status"` // draft|published
	PublishDate      *string  `json:"publish_date"`
	Author           int64    `json:"author"`
	AuthorName       string   `json:"author_name,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}

func (a Article) Key() int64 { return a.ID }

func (a Article) Cover() string {
	if a.FeaturedImageURL != "" {
		return a.FeaturedImageURL
	}
	return a.FeaturedImage
}

type GalleryImage struct {
	ID          FlexString `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url"`
	AltText     string     `json:"alt_text,omitempty"`
	Category    string     `json:"category,omitempty"`
	Featured    bool       `json:"featured,omitempty"`
	File        string     `json:"file,omitempty"`
	FileURL     string     `json:"file_url,omitempty"`
}

// Identifiable is implemented by every detail resource; a zero key marks a
// payload that decoded but carried no record.
type Identifiable interface {
	Key() int64
}
