package catalog

// Product is the read-only catalog record. The catalog is seeded at process
// start and never mutated; seller-managed inventory lives in its own module.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"originalPrice"`
	Category       string            `json:"category"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	InStock        bool              `json:"inStock"`
	StockCount     int               `json:"stockCount"`
	IsNewArrival   bool              `json:"isNewArrival"`
	Description    string            `json:"description"`
	Specifications map[string]string `json:"specifications"`
	Features       []string          `json:"features"`
}

func seedProducts() []Product {
	return []Product{
		// Makeup & Beauty
		{
			ID:            "1",
			Name:          "Lakme Absolute Matte Lipstick - Red Rush",
			Price:         350,
			OriginalPrice: 450,
			Category:      "Makeup & Beauty",
			Image:         "https://images.unsplash.com/photo-1586495777744-4413f21062fa?w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1586495777744-4413f21062fa?w=400",
				"https://images.unsplash.com/photo-1592327986060-5d9b6905e71c?w=400",
				"https://images.unsplash.com/photo-1583241800098-4b5fb38c4bf6?w=400",
			},
			Rating:       4.5,
			Reviews:      1234,
			InStock:      true,
			StockCount:   25,
			IsNewArrival: false,
			Description:  "Get gorgeous matte lips that last all day with Lakme Absolute Matte Lipstick. This long-lasting formula provides intense color payoff with a comfortable matte finish.",
			Specifications: map[string]string{
				"Brand":             "Lakme",
				"Shade":             "Red Rush",
				"Finish":            "Matte",
				"Weight":            "3.7g",
				"Country of Origin": "India",
			},
			Features: []string{
				"Long-lasting matte finish",
				"Intense color payoff",
				"Comfortable wear for 8+ hours",
				"Cruelty-free formula",
				"Available in 12 stunning shades",
			},
		},
		{
			ID:            "2",
			Name:          "Maybelline New York Colossal Kajal",
			Price:         199,
			OriginalPrice: 249,
			Category:      "Makeup & Beauty",
			Image:         "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400",
				"https://images.unsplash.com/photo-1583241800098-4b5fb38c4bf6?w=400",
			},
			Rating:       4.3,
			Reviews:      856,
			InStock:      true,
			StockCount:   45,
			IsNewArrival: true,
			Description:  "Intense black kajal with long-lasting formula. Perfect for Indian eyes with smudge-proof finish.",
			Specifications: map[string]string{
				"Brand":  "Maybelline",
				"Color":  "Deep Black",
				"Type":   "Kajal Pencil",
				"Weight": "0.35g",
			},
			Features: []string{
				"Smudge-proof formula",
				"Intense black color",
				"12-hour wear",
				"Easy application",
			},
		},
		{
			ID:            "3",
			Name:          "Nykaa SKINgenius Foundation",
			Price:         699,
			OriginalPrice: 899,
			Category:      "Makeup & Beauty",
			Image:         "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?w=400",
				"https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400",
			},
			Rating:       4.2,
			Reviews:      432,
			InStock:      true,
			StockCount:   30,
			IsNewArrival: false,
			Description:  "Medium to full coverage foundation perfect for Indian skin tones. Lightweight and breathable.",
			Specifications: map[string]string{
				"Brand":    "Nykaa",
				"Shade":    "Warm Beige",
				"Coverage": "Medium to Full",
				"Volume":   "30ml",
			},
			Features: []string{
				"Suits Indian skin tones",
				"SPF 20 protection",
				"Oil-free formula",
				"Long-lasting coverage",
			},
		},

		// Electronics
		{
			ID:            "4",
			Name:          "boAt Airdopes 131 Wireless Earbuds",
			Price:         1299,
			OriginalPrice: 1999,
			Category:      "Electronics",
			Image:         "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=400",
				"https://images.unsplash.com/photo-1484704849700-f032a568e944?w=400",
			},
			Rating:       4.2,
			Reviews:      3456,
			InStock:      true,
			StockCount:   50,
			IsNewArrival: true,
			Description:  "True wireless earbuds with superior sound quality and long battery life. Perfect for workouts and daily use.",
			Specifications: map[string]string{
				"Brand":            "boAt",
				"Battery Life":     "20 Hours",
				"Connectivity":     "Bluetooth 5.0",
				"Water Resistance": "IPX4",
			},
			Features: []string{
				"True wireless stereo",
				"Voice assistant compatible",
				"Sweat and water resistant",
				"Instant voice assistant",
			},
		},
		{
			ID:            "5",
			Name:          "Fire-Boltt Ninja Call Pro Smartwatch",
			Price:         2499,
			OriginalPrice: 3999,
			Category:      "Electronics",
			Image:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
				"https://images.unsplash.com/photo-1546868871-7041f2a55e12?w=400",
			},
			Rating:       4.0,
			Reviews:      2145,
			InStock:      true,
			StockCount:   35,
			IsNewArrival: false,
			Description:  "Full-featured smartwatch with calling facility, health monitoring, and sports tracking.",
			Specifications: map[string]string{
				"Brand":            "Fire-Boltt",
				"Display":          `1.69" HD`,
				"Battery":          "7 Days",
				"Water Resistance": "IP67",
			},
			Features: []string{
				"Bluetooth calling",
				"Health monitoring",
				"100+ sports modes",
				"Always-on display",
			},
		},
		{
			ID:            "6",
			Name:          "Ambrane 10000mAh Power Bank",
			Price:         899,
			OriginalPrice: 1299,
			Category:      "Electronics",
			Image:         "https://images.unsplash.com/photo-1609592669991-53833df0b5b4?w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1609592669991-53833df0b5b4?w=400",
				"https://images.unsplash.com/photo-1625948515291-69613efd103f?w=400",
			},
			Rating:       4.4,
			Reviews:      1876,
			InStock:      true,
			StockCount:   60,
			IsNewArrival: false,
			Description:  "High-capacity power bank with fast charging technology. Perfect for travel and daily use.",
			Specifications: map[string]string{
				"Brand":        "Ambrane",
				"Capacity":     "10000mAh",
				"Input/Output": "Type-C & USB",
				"Fast Charging": "18W",
			},
			Features: []string{
				"Dual USB output",
				"Fast charging support",
				"LED battery indicator",
				"Compact design",
			},
		},

		// Home Decor
		{
			ID:            "7",
			Name:          "Philips LED Warm White Desk Lamp",
			Price:         1199,
			OriginalPrice: 1699,
			Category:      "Home Decor",
			Image:         "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
				"https://images.unsplash.com/photo-1513506003901-1e6a229e2d15?w=400",
			},
			Rating:       4.6,
			Reviews:      543,
			InStock:      true,
			StockCount:   25,
			IsNewArrival: false,
			Description:  "Adjustable LED desk lamp with warm white light. Perfect for study and work.",
			Specifications: map[string]string{
				"Brand":             "Philips",
				"Power":             "9W LED",
				"Color Temperature": "2700K",
				"Adjustable":        "Yes",
			},
			Features: []string{
				"Energy efficient LED",
				"360-degree rotation",
				"Touch controls",
				"Eye-care lighting",
			},
		},
		{
			ID:            "8",
			Name:          "Decorative Ceramic Vase Set",
			Price:         799,
			OriginalPrice: 1299,
			Category:      "Home Decor",
			Image:         "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400",
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400",
			},
			Rating:       4.3,
			Reviews:      267,
			InStock:      true,
			StockCount:   40,
			IsNewArrival: true,
			Description:  "Beautiful ceramic vase set of 3 pieces. Perfect for modern home decoration.",
			Specifications: map[string]string{
				"Material": "Ceramic",
				"Set":      "3 Pieces",
				"Color":    "White & Gold",
				"Height":   "15cm, 20cm, 25cm",
			},
			Features: []string{
				"Premium ceramic finish",
				"Modern design",
				"Set of 3 different sizes",
				"Gold accent details",
			},
		},

		// Gym & Fitness
		{
			ID:            "9",
			Name:          "Strauss Yoga Mat Anti-Skid",
			Price:         699,
			OriginalPrice: 1299,
			Category:      "Gym & Fitness",
			Image:         "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
				"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
			},
			Rating:       4.4,
			Reviews:      892,
			InStock:      true,
			StockCount:   55,
			IsNewArrival: false,
			Description:  "Premium quality yoga mat with excellent grip and cushioning. Perfect for yoga and fitness.",
			Specifications: map[string]string{
				"Brand":     "Strauss",
				"Material":  "NBR Foam",
				"Size":      "183cm x 61cm",
				"Thickness": "10mm",
			},
			Features: []string{
				"Anti-skid surface",
				"Extra thick cushioning",
				"Eco-friendly material",
				"Carry strap included",
			},
		},
		{
			ID:            "10",
			Name:          "Kore Adjustable Dumbbells Set",
			Price:         1599,
			OriginalPrice: 2499,
			Category:      "Gym & Fitness",
			Image:         "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
				"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
			},
			Rating:       4.5,
			Reviews:      678,
			InStock:      true,
			StockCount:   20,
			IsNewArrival: true,
			Description:  "Adjustable dumbbells set perfect for home workouts. High-quality PVC coating.",
			Specifications: map[string]string{
				"Brand":      "Kore",
				"Weight":     "5kg to 15kg",
				"Material":   "PVC Coated Iron",
				"Adjustable": "Yes",
			},
			Features: []string{
				"Adjustable weight",
				"Non-slip grip",
				"Durable PVC coating",
				"Space-saving design",
			},
		},

		// Bags
		{
			ID:            "11",
			Name:          "Wildcraft Laptop Backpack",
			Price:         1899,
			OriginalPrice: 2999,
			Category:      "Bags",
			Image:         "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
				"https://images.unsplash.com/photo-1521944405259-1baaa3b4c5d8?w=400",
			},
			Rating:       4.3,
			Reviews:      1234,
			InStock:      true,
			StockCount:   45,
			IsNewArrival: false,
			Description:  "Spacious laptop backpack with multiple compartments. Perfect for office and travel.",
			Specifications: map[string]string{
				"Brand":       "Wildcraft",
				"Capacity":    "30 Liters",
				"Laptop Size": `Up to 15.6"`,
				"Material":    "Polyester",
			},
			Features: []string{
				"Padded laptop compartment",
				"Multiple pockets",
				"Ergonomic design",
				"Water-resistant",
			},
		},
		{
			ID:            "12",
			Name:          "Lavie Handbag for Women",
			Price:         1299,
			OriginalPrice: 1999,
			Category:      "Bags",
			Image:         "https://images.unsplash.com/photo-1521944405259-1baaa3b4c5d8?w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1521944405259-1baaa3b4c5d8?w=400",
				"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
			},
			Rating:       4.2,
			Reviews:      567,
			InStock:      true,
			StockCount:   30,
			IsNewArrival: true,
			Description:  "Elegant handbag for women with premium synthetic leather finish.",
			Specifications: map[string]string{
				"Brand":    "Lavie",
				"Material": "Synthetic Leather",
				"Color":    "Brown",
				"Closure":  "Zip",
			},
			Features: []string{
				"Premium synthetic leather",
				"Multiple compartments",
				"Adjustable strap",
				"Elegant design",
			},
		},

		// Books
		{
			ID:            "13",
			Name:          "The Alchemist by Paulo Coelho",
			Price:         299,
			OriginalPrice: 399,
			Category:      "Books",
			Image:         "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400",
				"https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=400",
			},
			Rating:       4.7,
			Reviews:      5432,
			InStock:      true,
			StockCount:   100,
			IsNewArrival: false,
			Description:  "A classic tale of self-discovery and following your dreams. One of the most inspiring books ever written.",
			Specifications: map[string]string{
				"Author":    "Paulo Coelho",
				"Pages":     "163",
				"Language":  "English",
				"Publisher": "HarperCollins",
			},
			Features: []string{
				"International bestseller",
				"Inspiring story",
				"Easy to read",
				"Life-changing book",
			},
		},
		{
			ID:            "14",
			Name:          "Atomic Habits by James Clear",
			Price:         449,
			OriginalPrice: 599,
			Category:      "Books",
			Image:         "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=400",
			Images: []string{
				"https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=400",
				"https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400",
			},
			Rating:       4.8,
			Reviews:      3456,
			InStock:      true,
			StockCount:   75,
			IsNewArrival: true,
			Description:  "A revolutionary guide to building good habits and breaking bad ones. Transform your life one habit at a time.",
			Specifications: map[string]string{
				"Author":    "James Clear",
				"Pages":     "320",
				"Language":  "English",
				"Publisher": "Random House",
			},
			Features: []string{
				"Practical strategies",
				"Evidence-based methods",
				"Easy to implement",
				"Life-changing insights",
			},
		},
	}
}
