package store

import "github.com/example/wanderlust/internal/models"

// Seed content used whenever storage has nothing readable for a key. Each
// function returns fresh slices so callers may mutate the result.

func defaultSettings() models.SiteSettings {
	return models.SiteSettings{
		SiteName:       "Wanderlust",
		LogoURL:        "/logo.svg",
		PrimaryColor:   "#0f766e",
		SecondaryColor: "#f59e0b",
		FontFamily:     "Inter",

		HeroTitle:    "Discover Your Next Adventure",
		HeroSubtitle: "Hand-picked destinations, exclusive deals and tested gear for curious travellers.",
		HeroImage:    "https://images.unsplash.com/photo-1507525428034-b723cf961d3e",

		SEOTitle:       "Wanderlust | Travel Deals, Destinations & Gear",
		SEODescription: "Find the best travel deals, destination guides and travel gear, with an AI concierge to plan your trip.",
		SEOKeywords:    "travel, deals, destinations, itinerary, travel gear",
		CanonicalURL:   "https://wanderlust.example.com",
		OGImage:        "https://images.unsplash.com/photo-1507525428034-b723cf961d3e",
		AllowIndexing:  true,

		Ads: models.Ads{
			Enabled:       true,
			HeaderBanner:  `<div class="ad ad-header">Advertise with Wanderlust</div>`,
			SidebarBanner: `<div class="ad ad-sidebar">Your brand here</div>`,
		},
		SocialLinks: []models.SocialLink{
			{Platform: "instagram", URL: "https://instagram.com/wanderlust"},
			{Platform: "facebook", URL: "https://facebook.com/wanderlust"},
			{Platform: "youtube", URL: "https://youtube.com/@wanderlust"},
		},
		Contact: models.Contact{
			Address: "221 Harbour Street, Lisbon, Portugal",
			Phone:   "+351 210 000 000",
			Email:   "hello@wanderlust.example.com",
		},
		BlogCategories: []string{"Travel Tips", "Destinations", "Food", "Budget Travel", "Adventure"},
		DealCategories: append([]string(nil), models.DefaultDealCategories...),

		AdminEmail:    "admin@wanderlust.example.com",
		AdminPassword: "admin123",
	}
}

func defaultBlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:      "b1",
			Slug:    "10-hidden-gems-in-portugal",
			Title:   "10 Hidden Gems in Portugal",
			Excerpt: "Skip the crowds in Lisbon and Porto and head for these quiet corners instead.",
			Content: "Portugal is more than its two famous cities. From the schist villages of the interior to the wild beaches of the Alentejo coast...",
			Image:   "https://images.unsplash.com/photo-1555881400-74d7acaacd8b",
			Author:  "Ana Ribeiro",
			Date:    "March 12, 2025",
			Tags:    []string{"Destinations", "Travel Tips"},
		},
		{
			ID:      "b2",
			Slug:    "how-to-travel-southeast-asia-on-30-a-day",
			Title:   "How to Travel Southeast Asia on $30 a Day",
			Excerpt: "Street food, night buses and guesthouses: a practical budget breakdown.",
			Content: "A month across Thailand, Laos and Vietnam does not need to break the bank...",
			Image:   "https://images.unsplash.com/photo-1528181304800-259b08848526",
			Author:  "Tom Keller",
			Date:    "February 2, 2025",
			Tags:    []string{"Budget Travel"},
		},
	}
}

func defaultDestinations() []models.Destination {
	return []models.Destination{
		{
			ID:           "d1",
			Slug:         "santorini",
			Name:         "Santorini",
			Continent:    "Europe",
			Description:  "Whitewashed villages above a flooded caldera and the Aegean's best sunsets.",
			Image:        "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff",
			AffiliateURL: "https://www.booking.com/region/gr/santorini.html",
		},
		{
			ID:          "d2",
			Slug:        "kyoto",
			Name:        "Kyoto",
			Continent:   "Asia",
			Description: "Temples, tea houses and bamboo groves in Japan's former imperial capital.",
			Image:       "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e",
		},
		{
			ID:          "d3",
			Slug:        "patagonia",
			Name:        "Patagonia",
			Continent:   "South America",
			Description: "Granite spires, glaciers and some of the world's great hiking trails.",
			Image:       "https://images.unsplash.com/photo-1531761535209-180857e963b9",
		},
	}
}

func defaultDeals() []models.Deal {
	return []models.Deal{
		{
			ID:            "deal1",
			Slug:          "bali-beach-resort-7-nights",
			Title:         "Bali Beach Resort, 7 Nights",
			Location:      "Indonesia",
			City:          "Seminyak",
			Categories:    []string{"Hotels", "Packages"},
			Price:         899,
			OriginalPrice: 1299,
			Image:         "https://images.unsplash.com/photo-1537996194471-e657df975ab4",
			Rating:        4.8,
			Duration:      "7 nights",
			AffiliateURL:  "https://www.expedia.com/",
		},
		{
			ID:            "deal2",
			Slug:          "iceland-northern-lights-tour",
			Title:         "Iceland Northern Lights Tour",
			Location:      "Iceland",
			City:          "Reykjavik",
			Categories:    []string{"Tours"},
			Price:         549,
			OriginalPrice: 720,
			Image:         "https://images.unsplash.com/photo-1531366936337-7c912a4589a7",
			Rating:        4.6,
			Duration:      "3 days",
			AffiliateURL:  "https://www.getyourguide.com/",
		},
	}
}

func defaultGear() []models.GearProduct {
	return []models.GearProduct{
		{
			ID:           "g1",
			Slug:         "carry-on-travel-backpack-40l",
			Name:         "Carry-On Travel Backpack 40L",
			Description:  "Clamshell opening, laptop sleeve and fits most airline cabin limits.",
			Price:        129.99,
			Image:        "https://images.unsplash.com/photo-1553062407-98eeb64c6a62",
			Category:     "Bags",
			AffiliateURL: "https://www.amazon.com/",
		},
		{
			ID:           "g2",
			Slug:         "universal-travel-adapter",
			Name:         "Universal Travel Adapter",
			Description:  "Works in 150+ countries with four USB ports.",
			Price:        24.99,
			Image:        "https://images.unsplash.com/photo-1583394838336-acd977736f90",
			Category:     "Electronics",
			AffiliateURL: "https://www.amazon.com/",
		},
	}
}
