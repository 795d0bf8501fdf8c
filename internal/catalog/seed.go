package catalog

import "github.com/dealradar/dealradar/internal/domain"

// Seed returns the built-in demo catalog used when no catalog file is
// configured. Order matters: it is the catalog order ties fall back to.
func Seed() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "iPhone 15 Pro Max",
			Description: "Latest Apple flagship with A17 Pro chip, 256GB storage",
			Category:    "Smartphones",
			ImageURL:    "https://images.pexels.com/photos/404280/pexels-photo-404280.jpeg",
			Offers: []domain.Offer{
				{ShopName: "TechMart", Price: 1299, Currency: "USD"},
				{ShopName: "GadgetStore", Price: 1249, Currency: "USD"},
				{ShopName: "ElectroHub", Price: 1279, Currency: "USD"},
			},
			Specifications: map[string]string{
				"Display": "6.7-inch Super Retina XDR",
				"Chip":    "A17 Pro",
				"Storage": "256GB",
				"Camera":  "Triple 48MP system",
			},
		},
		{
			ID:          "2",
			Name:        "Samsung Galaxy S24 Ultra",
			Description: "Premium Android phone with S Pen, 512GB storage",
			Category:    "Smartphones",
			ImageURL:    "https://images.pexels.com/photos/404280/pexels-photo-404280.jpeg",
			Offers: []domain.Offer{
				{ShopName: "TechMart", Price: 1199, Currency: "USD"},
				{ShopName: "MobileWorld", Price: 1179, Currency: "USD"},
				{ShopName: "ElectroHub", Price: 1209, Currency: "USD"},
			},
			Specifications: map[string]string{
				"Display": "6.8-inch Dynamic AMOLED 2X",
				"Chip":    "Snapdragon 8 Gen 3",
				"Storage": "512GB",
				"Camera":  "Quad camera with 200MP main",
			},
		},
		{
			ID:          "3",
			Name:        "MacBook Pro 14-inch M3",
			Description: "Professional laptop with M3 chip, 16GB RAM, 512GB SSD",
			Category:    "Laptops",
			ImageURL:    "https://images.pexels.com/photos/18105/pexels-photo.jpg",
			Offers: []domain.Offer{
				{ShopName: "AppleStore", Price: 1999, Currency: "USD"},
				{ShopName: "TechMart", Price: 1949, Currency: "USD"},
				{ShopName: "ComputerWorld", Price: 1979, Currency: "USD"},
			},
			Specifications: map[string]string{
				"Chip":    "Apple M3",
				"RAM":     "16GB unified memory",
				"Storage": "512GB SSD",
				"Display": "14.2-inch Liquid Retina XDR",
			},
		},
		{
			ID:          "4",
			Name:        "Sony WH-1000XM5 Headphones",
			Description: "Premium noise-canceling wireless headphones",
			Category:    "Audio",
			ImageURL:    "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
			Offers: []domain.Offer{
				{ShopName: "AudioHub", Price: 399, Currency: "USD"},
				{ShopName: "SoundStore", Price: 379, Currency: "USD"},
				{ShopName: "TechMart", Price: 389, Currency: "USD"},
			},
			Specifications: map[string]string{
				"Type":            "Over-ear wireless",
				"Noise Canceling": "Industry-leading ANC",
				"Battery":         "Up to 30 hours",
			},
		},
		{
			ID:          "5",
			Name:        "Dell XPS 15 Laptop",
			Description: "High-performance laptop with Intel i7, 32GB RAM",
			Category:    "Laptops",
			ImageURL:    "https://images.pexels.com/photos/18105/pexels-photo.jpg",
			Offers: []domain.Offer{
				{ShopName: "DellDirect", Price: 2299, Currency: "USD"},
				{ShopName: "ComputerWorld", Price: 2249, Currency: "USD"},
				{ShopName: "TechMart", Price: 2279, Currency: "USD"},
			},
			Specifications: map[string]string{
				"Processor": "Intel Core i7-13700H",
				"RAM":       "32GB DDR5",
				"Storage":   "1TB SSD",
			},
		},
		{
			ID:          "6",
			Name:        "iPad Air 5th Gen",
			Description: "Versatile tablet with M1 chip, perfect for creativity",
			Category:    "Tablets",
			ImageURL:    "https://images.pexels.com/photos/1334597/pexels-photo-1334597.jpeg",
			Offers: []domain.Offer{
				{ShopName: "AppleStore", Price: 599, Currency: "USD"},
				{ShopName: "TabletHub", Price: 579, Currency: "USD"},
				{ShopName: "TechMart", Price: 589, Currency: "USD"},
			},
			Specifications: map[string]string{
				"Chip":    "Apple M1",
				"Display": "10.9-inch Liquid Retina",
				"Storage": "256GB",
			},
		},
		{
			ID:          "7",
			Name:        "Nintendo Switch OLED",
			Description: "Gaming console with vibrant OLED display",
			Category:    "Gaming",
			ImageURL:    "https://images.pexels.com/photos/275033/pexels-photo-275033.jpeg",
			Offers: []domain.Offer{
				{ShopName: "GameStore", Price: 349, Currency: "USD"},
				{ShopName: "ElectroHub", Price: 339, Currency: "USD"},
				{ShopName: "TechMart", Price: 349, Currency: "USD"},
			},
			Specifications: map[string]string{
				"Display": "7-inch OLED screen",
				"Storage": "64GB internal",
				"Battery": "Up to 9 hours",
			},
		},
		{
			ID:          "8",
			Name:        "Canon EOS R5 Camera",
			Description: "Professional mirrorless camera with 45MP sensor",
			Category:    "Cameras",
			ImageURL:    "https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg",
			Offers: []domain.Offer{
				{ShopName: "CameraHub", Price: 3899, Currency: "USD"},
				{ShopName: "PhotoStore", Price: 3849, Currency: "USD"},
				{ShopName: "TechMart", Price: 3879, Currency: "USD"},
			},
			Specifications: map[string]string{
				"Sensor": "45MP Full-Frame CMOS",
				"Video":  "8K RAW recording",
			},
		},
		{
			ID:          "9",
			Name:        "Samsung 65\" QLED TV",
			Description: "4K QLED Smart TV with HDR and gaming features",
			Category:    "TVs",
			ImageURL:    "https://images.pexels.com/photos/1201996/pexels-photo-1201996.jpeg",
			Offers: []domain.Offer{
				{ShopName: "ElectroHub", Price: 1299, Currency: "USD"},
				{ShopName: "TVWorld", Price: 1249, Currency: "USD"},
				{ShopName: "TechMart", Price: 1279, Currency: "USD"},
			},
			Specifications: map[string]string{
				"Display": "65-inch QLED 4K",
				"HDR":     "HDR10+ support",
				"Gaming":  "120Hz, VRR support",
			},
		},
		{
			ID:          "10",
			Name:        "Apple Watch Series 9",
			Description: "Advanced smartwatch with health monitoring",
			Category:    "Wearables",
			ImageURL:    "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg",
			Offers: []domain.Offer{
				{ShopName: "AppleStore", Price: 399, Currency: "USD"},
				{ShopName: "WearableHub", Price: 379, Currency: "USD"},
				{ShopName: "TechMart", Price: 389, Currency: "USD"},
			},
			Specifications: map[string]string{
				"Chip":    "S9 SiP",
				"Display": "45mm Always-On Retina",
				"Battery": "Up to 18 hours",
			},
		},
	}
}
