package nft

import (
	"strings"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/domain"
)

// DefaultTraitType names a trait given without a "key:" prefix
const DefaultTraitType = "Category"

// Attribute is one entry of the metadata "attributes" array. Value stays
// untyped since collections put numbers and strings there alike.
type Attribute struct {
	TraitType   string      `json:"trait_type"`
	Value       interface{} `json:"value"`
	DisplayType string      `json:"display_type,omitempty"`
}

// Metadata is the JSON document pinned for every token
type Metadata struct {
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes,omitempty"`
	// some collections ship attributes under "traits"
	Traits []Attribute `json:"traits,omitempty"`
}

func (m Metadata) AllAttributes() []Attribute {
	if len(m.Attributes) > 0 {
		return m.Attributes
	}
	return m.Traits
}

type CreateParams struct {
	Name        string   `json:"name" form:"name" validate:"required,min=3"`
	Description string   `json:"description" form:"description" validate:"required,min=10"`
	Traits      []string `json:"traits" form:"traits"`
	BasePrice   string   `json:"basePrice" form:"basePrice" validate:"required,eth_amount"`
	Image       []byte   `json:"-" validate:"required_without=ImageData"`
	// ImageData is a data:image/...;base64, string, used when Image is empty
	ImageData string `json:"image" form:"imageData"`
	FileName  string `json:"-"`
}

type Created struct {
	TxHash      domain.TxHash `json:"txHash"`
	ImageURI    string        `json:"imageURI"`
	MetadataURI string        `json:"metadataURI"`
}

type Usecase interface {
	// Create pins the image and its metadata, then mints through createNFT
	Create(c ctx.Ctx, p CreateParams) (*Created, error)
}

// CleanTraits trims the entries and drops empty ones
func CleanTraits(traits []string) []string {
	res := []string{}
	for _, t := range traits {
		if t = strings.TrimSpace(t); t != "" {
			res = append(res, t)
		}
	}
	return res
}

// AttributesFromTraits maps "key:value" traits to metadata attributes. A
// trait without a key is filed under DefaultTraitType.
func AttributesFromTraits(traits []string) []Attribute {
	res := []Attribute{}
	for _, t := range CleanTraits(traits) {
		parts := strings.SplitN(t, ":", 2)
		key := strings.TrimSpace(parts[0])
		if len(parts) == 1 || key == "" {
			res = append(res, Attribute{TraitType: DefaultTraitType, Value: strings.TrimSpace(strings.TrimPrefix(t, ":"))})
			continue
		}
		res = append(res, Attribute{TraitType: key, Value: strings.TrimSpace(parts[1])})
	}
	return res
}

// ParseTraits accepts traits as separate values, comma separated lists, or both
func ParseTraits(values ...string) []string {
	res := []string{}
	for _, v := range values {
		res = append(res, CleanTraits(strings.Split(v, ","))...)
	}
	return res
}
