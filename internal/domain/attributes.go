package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownOption is returned when an attribute value is not one of the configured options
var ErrUnknownOption = errors.New("domain: unknown attribute option")

// SelectedAttributes categorical form fields chosen through the dropdowns
type SelectedAttributes struct {
	Product  string
	Vertical string
	Location string
}

// AttributeOptions enumerated option sets for every dropdown
type AttributeOptions struct {
	Products  []string
	Verticals []string
	Locations []string
}

// DefaultAttributeOptions returns the sample option sets
func DefaultAttributeOptions() AttributeOptions {
	return AttributeOptions{
		Products:  append([]string(nil), DefaultProducts...),
		Verticals: append([]string(nil), DefaultVerticals...),
		Locations: append([]string(nil), DefaultLocations...),
	}
}

// Defaults returns the initial form state: the first option of every field
func (o AttributeOptions) Defaults() SelectedAttributes {
	return SelectedAttributes{
		Product:  first(o.Products),
		Vertical: first(o.Verticals),
		Location: first(o.Locations),
	}
}

// Validate checks that every field holds one of its options
func (o AttributeOptions) Validate(attrs SelectedAttributes) error {
	if !contains(o.Products, attrs.Product) {
		return fmt.Errorf("%w: product=%q", ErrUnknownOption, attrs.Product)
	}
	if !contains(o.Verticals, attrs.Vertical) {
		return fmt.Errorf("%w: vertical=%q", ErrUnknownOption, attrs.Vertical)
	}
	if !contains(o.Locations, attrs.Location) {
		return fmt.Errorf("%w: location=%q", ErrUnknownOption, attrs.Location)
	}
	return nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func contains(values []string, v string) bool {
	for _, option := range values {
		if option == v {
			return true
		}
	}
	return false
}
