package core

import (
	"errors"
	"strings"
)

type (
	// Item is a purchasable product entry. Price zero means no price is
	// known; an unpriced item still counts toward item totals.
	Item struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		URL         string   `json:"url,omitempty"`
		Price       float64  `json:"price,omitempty"`
		ImageURL    string   `json:"imageUrl,omitempty"`
		IsPreferred bool     `json:"isPreferred,omitempty"`
		Notes       []string `json:"notes,omitempty"`
	}

	// Category groups items in display order. Item order is the append
	// order assigned at creation time and is never re-sorted.
	Category struct {
		ID               string `json:"id"`
		Name             string `json:"name"`
		Icon             string `json:"icon"`
		PurchaseDeadline string `json:"purchaseDeadline,omitempty"`
		Items            []Item `json:"items"`
	}
)

var (
	ErrEmptyID       = errors.New("empty id")
	ErrEmptyName     = errors.New("empty name")
	ErrEmptyIcon     = errors.New("empty icon")
	ErrNegativePrice = errors.New("negative price")
	ErrInvalidStatus = errors.New("invalid status")
)

func (i Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	if len(i.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if i.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(c.Icon) == "" {
		return ErrEmptyIcon
	}
	for _, item := range c.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}
