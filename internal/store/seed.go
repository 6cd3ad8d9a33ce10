package store

import "wishlist/internal/core"

// SeedCatalog returns the built-in move-in shopping list used to populate an
// empty backend on first run. Categories and items keep their authored order.
func SeedCatalog() []core.Category {
	return []core.Category{
		{
			ID: "washroom", Name: "Washroom Corner Shelf", Icon: "🚿",
			Items: []core.Item{
				{
					ID:    "vesken",
					Name:  "VESKEN Corner shelf unit - white 33x33x71 cm",
					URL:   "https://www.ikea.com/ca/en/p/vesken-corner-shelf-unit-white-70471092/",
					Price: 17.99,
				},
			},
		},
		{
			ID: "sideboard", Name: "Sideboard", Icon: "🗄️",
			Items: []core.Item{
				{
					ID:          "lanesund",
					Name:        "LÄNESUND Sideboard - gray-brown",
					URL:         "https://www.ikea.com/ca/en/p/lanesund-sideboard-gray-brown-90466546/",
					Price:       899.99,
					IsPreferred: true,
					Notes: []string{
						"Good size, fits the area next to the balcony window",
						"Storage for: dishes, kitchenware, snacks, etc.",
						"Look for a similar product",
					},
				},
				{
					ID:    "hauga-sideboard",
					Name:  "HAUGA Sideboard - white",
					URL:   "https://www.ikea.com/ca/en/p/hauga-sideboard-white-50596559/",
					Price: 499.99,
				},
				{
					ID:    "besta",
					Name:  "BESTÅ Storage combination with doors",
					URL:   "https://www.ikea.com/ca/en/p/besta-storage-combination-with-doors-lappviken-stubbarp-sindvik-white-clear-glass-s59419086/",
					Price: 700,
					Notes: []string{"Good option, costs a bit less ~$700"},
				},
				{
					ID:    "skruvby",
					Name:  "SKRUVBY Sideboard - white",
					URL:   "https://www.ikea.com/ca/en/p/skruvby-sideboard-white-60568725/",
					Price: 249,
				},
			},
		},
		{
			ID: "bedroom", Name: "Bedroom", Icon: "🛏️",
			Items: []core.Item{
				{
					ID:    "malm-dresser",
					Name:  "MALM 6-drawer dresser - white",
					URL:   "https://www.ikea.com/ca/en/p/malm-6-drawer-dresser-white-60360432/",
					Price: 279,
				},
				{
					ID:    "nordli-headboard",
					Name:  "NORDLI Headboard - white",
					URL:   "https://www.ikea.com/ca/en/p/nordli-headboard-white-10372972/",
					Price: 230,
					Notes: []string{"Optional, decide after the bed frame arrives"},
				},
			},
		},
		{
			ID: "kitchen", Name: "Kitchen", Icon: "🍳",
			Items: []core.Item{
				{
					ID:    "ordning",
					Name:  "ORDNING Utensil holder - stainless steel",
					URL:   "https://www.ikea.com/ca/en/p/ordning-utensil-holder-stainless-steel-30011832/",
					Price: 5.99,
				},
				{
					ID:   "rinnig",
					Name: "RINNIG Dish drainer",
					URL:  "https://www.ikea.com/ca/en/p/rinnig-dish-drainer-40407959/",
				},
			},
		},
	}
}
