// Package fixtures holds the static demo data the platform is seeded with
// at every startup. Nothing here survives a restart on purpose: products
// and leads are re-seeded into their collections, everything else is served
// straight from these slices.
package fixtures

import (
	"time"

	"github.com/exportbase/marketplace-api/internal/core/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("fixtures: bad date " + s)
	}
	return t.UTC()
}

// Products returns the demo catalog.
func Products() []*domain.Product {
	return []*domain.Product{
		{
			ID: "prod-1", Name: "Premium Wooden Dining Table", Category: "Furniture",
			Description:   "Elegant wooden dining table made from premium oak. Perfect for luxury homes and hotels.",
			Price:         450, Commission: 45, Status: domain.ProductActive,
			TargetMarkets: []string{"gulf", "europe"},
			FactoryID:     "fact-almahmoud", FactoryName: "Al-Mahmoud Furniture",
			MarketerCount: 3, LeadCount: 8, CreatedAt: day("2024-03-15"),
		},
		{
			ID: "prod-2", Name: "Handcrafted Leather Sofa", Category: "Furniture",
			Description:   "Premium leather sofa handcrafted by skilled artisans. Durable and elegant design for luxury living rooms.",
			Price:         1200, Commission: 120, Status: domain.ProductActive,
			TargetMarkets: []string{"europe", "usa"},
			FactoryID:     "fact-cairocomfort", FactoryName: "Cairo Comfort",
			MarketerCount: 5, LeadCount: 12, CreatedAt: day("2024-03-10"),
		},
		{
			ID: "prod-3", Name: "Modern Glass Coffee Table", Category: "Furniture",
			Description:   "Contemporary glass coffee table with tempered glass and stainless steel frame. Elegant and durable.",
			Price:         320, Commission: 32, Status: domain.ProductActive,
			TargetMarkets: []string{"gulf", "africa"},
			FactoryID:     "fact-glassmasters", FactoryName: "Glass Masters Egypt",
			MarketerCount: 2, LeadCount: 3, CreatedAt: day("2024-04-01"),
		},
		{
			ID: "prod-4", Name: "Organic Cotton Bedsheets", Category: "Textiles",
			Description:   "100% Egyptian cotton bedsheets with high thread count. Soft, luxurious feel and excellent durability.",
			Price:         85, Commission: 15, Status: domain.ProductActive,
			TargetMarkets: []string{"europe", "usa"},
			FactoryID:     "fact-alexandria", FactoryName: "Alexandria Textiles",
			MarketerCount: 4, LeadCount: 6, CreatedAt: day("2024-03-05"),
		},
		{
			ID: "prod-5", Name: "Ceramic Dining Set", Category: "Home Goods",
			Description:   "Beautiful handcrafted ceramic dining set including plates, bowls, and cups. Traditional Egyptian designs.",
			Price:         120, Commission: 18, Status: domain.ProductActive,
			TargetMarkets: []string{"africa", "asia"},
			FactoryID:     "fact-nileceramics", FactoryName: "Nile Ceramics",
			MarketerCount: 2, LeadCount: 3, CreatedAt: day("2024-02-20"),
		},
		{
			ID: "prod-6", Name: "Olive Wood Cutting Board", Category: "Home Goods",
			Description:   "Beautiful olive wood cutting boards with unique grain patterns. Each piece is one of a kind.",
			Price:         45, Commission: 9, Status: domain.ProductActive,
			TargetMarkets: []string{"europe", "usa"},
			FactoryID:     "fact-naturalcrafts", FactoryName: "Natural Crafts",
			MarketerCount: 3, LeadCount: 7, CreatedAt: day("2024-03-25"),
		},
		{
			ID: "prod-7", Name: "Hand-Knotted Wool Carpet", Category: "Home Goods",
			Description:   "Traditional hand-knotted wool carpet with authentic Egyptian designs. Premium quality and craftsmanship.",
			Price:         650, Commission: 78, Status: domain.ProductActive,
			TargetMarkets: []string{"gulf", "europe", "usa"},
			FactoryID:     "fact-royalcarpets", FactoryName: "Royal Carpets Egypt",
			MarketerCount: 6, LeadCount: 15, CreatedAt: day("2024-01-10"),
		},
		{
			ID: "prod-8", Name: "Brass Wall Decor", Category: "Home Goods",
			Description:   "Handcrafted brass wall decorations with traditional Islamic patterns. Perfect for luxury homes and hotels.",
			Price:         89, Commission: 14, Status: domain.ProductActive,
			TargetMarkets: []string{"gulf", "europe"},
			FactoryID:     "fact-cairometallics", FactoryName: "Cairo Metallics",
			MarketerCount: 4, LeadCount: 9, CreatedAt: day("2024-02-15"),
		},
	}
}

// Leads returns the demo lead book.
func Leads() []*domain.Lead {
	return []*domain.Lead{
		{
			ID: "lead-1", ClientName: "Dubai Luxury Hotels", Country: "United Arab Emirates",
			ProductID: "prod-1", ProductName: "Premium Wooden Dining Table", FactoryName: "Al-Mahmoud Furniture",
			MarketerID: "mkt-ahmed", MarketerName: "Ahmed Hassan",
			Status:     domain.LeadNew, Quantity: 20, Value: 9000,
			CreatedAt:  day("2024-04-01"), UpdatedAt: day("2024-04-01"),
		},
		{
			ID: "lead-2", ClientName: "European Furniture Imports", Country: "Germany",
			ProductID: "prod-2", ProductName: "Handcrafted Leather Sofa", FactoryName: "Cairo Comfort",
			MarketerID: "mkt-sara", MarketerName: "Sara Ahmed",
			Status:     domain.LeadContacted, Quantity: 10, Value: 12000,
			CreatedAt:  day("2024-03-28"), UpdatedAt: day("2024-03-28"),
		},
		{
			ID: "lead-3", ClientName: "Riyadh Home Furnishing", Country: "Saudi Arabia",
			ProductID: "prod-3", ProductName: "Modern Glass Coffee Table", FactoryName: "Glass Masters Egypt",
			MarketerID: "mkt-mohammed", MarketerName: "Mohammed Salah",
			Status:     domain.LeadNegotiating, Quantity: 15, Value: 4800,
			CreatedAt:  day("2024-03-25"), UpdatedAt: day("2024-03-27"),
		},
		{
			ID: "lead-4", ClientName: "London Luxury Homes", Country: "United Kingdom",
			ProductID: "prod-4", ProductName: "Organic Cotton Bedsheets", FactoryName: "Alexandria Textiles",
			MarketerID: "mkt-ahmed", MarketerName: "Ahmed Hassan",
			Status:     domain.LeadSampleRequested, Quantity: 100, Value: 8500,
			CreatedAt:  day("2024-03-20"), UpdatedAt: day("2024-03-22"),
		},
		{
			ID: "lead-5", ClientName: "Nairobi Hotels Group", Country: "Kenya",
			ProductID: "prod-5", ProductName: "Ceramic Dining Set", FactoryName: "Nile Ceramics",
			MarketerID: "mkt-laila", MarketerName: "Laila Omar",
			Status:     domain.LeadClosed, Quantity: 50, Value: 6000,
			CreatedAt:  day("2024-03-15"), UpdatedAt: day("2024-03-18"),
		},
		{
			ID: "lead-6", ClientName: "Scandinavian Design Co.", Country: "Sweden",
			ProductID: "prod-2", ProductName: "Handcrafted Leather Sofa", FactoryName: "Cairo Comfort",
			MarketerID: "mkt-sara", MarketerName: "Sara Ahmed",
			Status:     domain.LeadLost, Quantity: 5, Value: 6000,
			CreatedAt:  day("2024-03-10"), UpdatedAt: day("2024-03-14"),
		},
	}
}

// Campaigns returns the demo campaign list.
func Campaigns() []*domain.Campaign {
	return []*domain.Campaign{
		{
			ID: "camp-1", Name: "Egyptian Furniture Export", Status: domain.CampaignActive,
			Target: "Europe", Leads: 12, Budget: 1500, Spent: 850,
			StartDate: "2024-03-15", EndDate: "2024-06-15",
			Products:  []string{"Premium Wooden Dining Table", "Handcrafted Leather Sofa"},
			Performance: 87,
		},
		{
			ID: "camp-2", Name: "Cotton Textiles Promotion", Status: domain.CampaignActive,
			Target: "USA", Leads: 8, Budget: 1200, Spent: 900,
			StartDate: "2024-02-20", EndDate: "2024-05-20",
			Products:  []string{"Organic Cotton Bedsheets", "Egyptian Cotton Towels"},
			Performance: 75,
		},
		{
			ID: "camp-3", Name: "Traditional Crafts Exhibition", Status: domain.CampaignPending,
			Target: "Gulf", Leads: 0, Budget: 2000, Spent: 0,
			StartDate: "2024-05-01", EndDate: "2024-08-01",
			Products:  []string{"Handcrafted Jewelry Box", "Traditional Egyptian Rugs"},
			Performance: 0,
		},
		{
			ID: "camp-4", Name: "Stone & Marble Export", Status: domain.CampaignCompleted,
			Target: "Europe", Leads: 15, Budget: 1800, Spent: 1800,
			StartDate: "2023-12-01", EndDate: "2024-03-01",
			Products:  []string{"Natural Stone Tiles", "Marble Countertops"},
			Performance: 92,
		},
		{
			ID: "camp-5", Name: "Kitchen Essentials Showcase", Status: domain.CampaignActive,
			Target: "Multiple", Leads: 6, Budget: 2500, Spent: 1200,
			StartDate: "2024-01-15", EndDate: "2024-05-15",
			Products:  []string{"Handmade Copper Cookware", "Olive Wood Cutting Boards"},
			Performance: 68,
		},
	}
}

// TrainingModules returns the training curriculum. The industry and skills
// tracks unlock after the basics track is completed.
func TrainingModules() []*domain.TrainingModule {
	return []*domain.TrainingModule{
		{
			ID: "mod-1", Title: "Introduction to Export Marketing",
			Description: "Learn the basics of export marketing and global trade.",
			Duration:    "2h 15m", Lessons: 8, Category: "basics",
		},
		{
			ID: "mod-2", Title: "Understanding International Markets",
			Description: "Discover how to research and enter new international markets.",
			Duration:    "3h 45m", Lessons: 12, Category: "basics",
			Requires:    []string{"mod-1"},
		},
		{
			ID: "mod-3", Title: "Egyptian Furniture Export",
			Description: "Specialized training for furniture export from Egypt.",
			Duration:    "4h 30m", Lessons: 16, Category: "industry",
			Requires:    []string{"mod-1", "mod-2"},
		},
		{
			ID: "mod-4", Title: "Textile Export Masterclass",
			Description: "Comprehensive guide to textile export strategies.",
			Duration:    "5h 20m", Lessons: 18, Category: "industry",
			Requires:    []string{"mod-1", "mod-2"},
		},
		{
			ID: "mod-5", Title: "Advanced Lead Generation",
			Description: "Tactics and strategies to generate quality export leads.",
			Duration:    "3h 10m", Lessons: 10, Category: "skills",
			Requires:    []string{"mod-1"},
		},
		{
			ID: "mod-6", Title: "Negotiation in Export Deals",
			Description: "Master the art of negotiation in international trade.",
			Duration:    "2h 40m", Lessons: 8, Category: "skills",
			Requires:    []string{"mod-5"},
		},
	}
}

// Factories returns the public directory entries.
func Factories() []*domain.FactoryProfile {
	return []*domain.FactoryProfile{
		{
			ID: "cairo-crafts", Name: "Cairo Crafts Ltd.", Location: "Cairo, Egypt",
			Categories:     []string{"Furniture", "Home Goods", "Handicrafts"},
			Description:    "Cairo Crafts is a leading manufacturer of handcrafted furniture and home goods, specializing in traditional Egyptian designs with modern functionality.",
			Certifications: []string{"ISO 9001:2015", "FSC Certified", "Export Ready"},
			Rating:         4.8, ReviewCount: 24, Verified: true,
		},
		{
			ID: "alexandria-textiles", Name: "Alexandria Textiles", Location: "Alexandria, Egypt",
			Categories:     []string{"Textiles", "Home Textiles", "Apparel"},
			Description:    "Alexandria Textiles produces premium Egyptian cotton products with a focus on sustainability and ethical manufacturing practices.",
			Certifications: []string{"ISO 9001:2015", "GOTS Certified", "Fair Trade"},
			Rating:         4.6, ReviewCount: 32, Verified: true,
		},
		{
			ID: "nile-ceramics", Name: "Nile Ceramics", Location: "Aswan, Egypt",
			Categories:     []string{"Home Goods", "Ceramics", "Tableware"},
			Description:    "Nile Ceramics combines traditional Egyptian pottery techniques with modern design to create beautiful, functional ceramics.",
			Certifications: []string{"Handcrafted Certification"},
			Rating:         4.2, ReviewCount: 18, Verified: true,
		},
		{
			ID: "delta-foods", Name: "Delta Foods", Location: "Damietta, Egypt",
			Categories:     []string{"Food & Beverages", "Organic", "Spices"},
			Description:    "Delta Foods exports authentic Egyptian food products including spices, herbs, and specialty ingredients.",
			Certifications: []string{"HACCP Certified", "ISO 22000", "Organic Certified"},
			Rating:         4.7, ReviewCount: 29, Verified: true,
		},
		{
			ID: "luxor-leather", Name: "Luxor Leather", Location: "Luxor, Egypt",
			Categories:     []string{"Leather Goods", "Accessories", "Footwear"},
			Description:    "Luxor Leather crafts premium leather products using traditional tanning methods and modern designs.",
			Certifications: []string{"Leather Working Group"},
			Rating:         4.5, ReviewCount: 21, Verified: false,
		},
		{
			ID: "egyptian-essentials", Name: "Egyptian Essentials", Location: "Faiyum, Egypt",
			Categories:     []string{"Cosmetics", "Essential Oils", "Natural Products"},
			Description:    "Egyptian Essentials produces natural beauty and wellness products using authentic Egyptian ingredients.",
			Certifications: []string{"Natural Product Association", "Cruelty-Free"},
			Rating:         4.4, ReviewCount: 16, Verified: false,
		},
	}
}

// Messages returns the demo platform inbox shown on the admin dashboard.
func Messages() []*domain.Message {
	return []*domain.Message{
		{
			ID: "msg-1", From: "cairo-furniture@exportbase.com",
			Subject: "Verification documents updated",
			Body:    "We uploaded the renewed FSC certificate for review.",
			SentAt:  day("2024-05-02"),
		},
		{
			ID: "msg-2", From: "ahmed.marketer@exportbase.com",
			Subject: "Commission question on Delta Foods spices",
			Body:    "Is the listed 12% commission negotiable for bulk orders above 5 containers?",
			SentAt:  day("2024-05-10"),
		},
		{
			ID: "msg-3", From: "support@exportbase.com",
			Subject: "Weekly platform digest",
			Body:    "14 new leads, 3 new factory applications, and 2 campaigns closed this week.",
			Read:    true,
			SentAt:  day("2024-05-13"),
		},
	}
}
