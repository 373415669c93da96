package usecase

import "studio-site/internal/domain"

func defaultHero() domain.HeroContent {
	return domain.HeroContent{
		Title:            "intelleeo",
		Tagline:          "Build Smart. Build Human.",
		Subtext:          "AI Software Studio",
		CTAPrimaryText:   "View Our Work",
		CTASecondaryText: "Contact Us",
	}
}

func defaultStats() []domain.Stat {
	return []domain.Stat{
		{Label: "Projects Completed", Value: "50+"},
		{Label: "Happy Clients", Value: "25+"},
		{Label: "Years of Experience", Value: "5+"},
		{Label: "Technologies Mastered", Value: "30+"},
	}
}

func defaultValues() []domain.Value {
	return []domain.Value{
		{
			Icon:        "Brain",
			Title:       "Intelligence First",
			Description: "We believe AI should augment human capabilities, not replace them. Every solution we build is designed to make people more effective and empowered.",
		},
		{
			Icon:        "Heart",
			Title:       "Human-Centered",
			Description: "Technology should serve humanity. We prioritize user experience, accessibility, and ethical considerations in every project we undertake.",
		},
		{
			Icon:        "Lightbulb",
			Title:       "Innovation",
			Description: "We stay at the forefront of technological advancement, constantly exploring new possibilities and pushing the boundaries of what's possible.",
		},
		{
			Icon:        "Users",
			Title:       "Collaboration",
			Description: "The best solutions emerge from diverse perspectives. We work closely with our clients as partners in the creative process.",
		},
	}
}

func defaultAbout() domain.AboutContent {
	return domain.AboutContent{
		Stats:  defaultStats(),
		Values: defaultValues(),
	}
}

func defaultContact() domain.ContactInfo {
	return domain.ContactInfo{}
}

func defaultSocialLinks() domain.SocialLinks {
	return domain.SocialLinks{}
}

func defaultChatConfig() domain.ChatConfig {
	return domain.ChatConfig{Provider: domain.ProviderGemini}
}

func defaultProjects() []domain.Project {
	return []domain.Project{
		{
			ID:          "1",
			Slug:        "ai-content-optimizer",
			Title:       "AI Content Optimizer",
			Subtitle:    "Smart content enhancement platform",
			Description: "An intelligent content optimization platform that uses advanced NLP to analyze, enhance, and personalize content for maximum engagement.",
			Problem:     "Content creators struggle to optimize their content for different audiences and platforms, leading to reduced engagement and reach.",
			Solution:    "Built an AI-powered platform that analyzes content sentiment, readability, and engagement potential, then provides actionable recommendations for improvement.",
			Role:        "Full-Stack Developer & AI Engineer",
			Timeline:    "3 months",
			TechStack:   []string{"React", "Node.js", "OpenAI GPT-4", "MongoDB", "TailwindCSS"},
			Tags:        []string{"AI", "Web", "Client"},
			Screenshot:  "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=800&h=1200&fit=crop",
			LiveLink:    "https://ai-content-optimizer.demo",
			SourceCode:  "https://github.com/intelleeo/ai-content-optimizer",
			AIHighlight: "Custom RAG model with OpenAI for personalized content recommendations",
		},
		{
			ID:          "2",
			Slug:        "smart-analytics-dashboard",
			Title:       "Smart Analytics Dashboard",
			Subtitle:    "Real-time business intelligence platform",
			Description: "A comprehensive analytics dashboard that transforms complex data into actionable insights using machine learning algorithms.",
			Problem:     "Businesses needed a way to visualize and understand their data without requiring technical expertise.",
			Solution:    "Created an intuitive dashboard with AI-powered insights, automated reporting, and predictive analytics capabilities.",
			Role:        "Lead Developer",
			Timeline:    "4 months",
			TechStack:   []string{"React", "TypeScript", "Python", "TensorFlow", "PostgreSQL"},
			Tags:        []string{"AI", "Web", "Client"},
			Screenshot:  "/uploads/smart_analytics_dashboard.webp",
			Images: []string{
				"https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1543286386-713bdd548da4?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=600&fit=crop",
			},
			DemoVideo:   "https://www.youtube.com/embed/dQw4w9WgXcQ",
			LiveLink:    "https://smart-analytics.demo",
			AIHighlight: "Machine learning models for predictive analytics and anomaly detection",
		},
		{
			ID:          "3",
			Slug:        "citizen-lab-hospital",
			Title:       "Citizen Lab Hospital",
			Subtitle:    "Hospital management system",
			Description: "A comprehensive hospital management system that streamlines patient records, appointments, billing, and staff management.",
			Problem:     "Hospitals needed an efficient way to manage patient data and streamline operations.",
			Solution:    "Developed a system that automates patient record management, appointment scheduling, and billing processes.",
			Role:        "Full-Stack Developer",
			Timeline:    "6 months",
			TechStack:   []string{"Django", "React", "PostgreSQL", "Docker", "REST APIs", "VPS"},
			Tags:        []string{"Web", "Client"},
			Screenshot:  "/uploads/DevNest/citizen-lab.jpg",
			LiveLink:    "https://www.citizenlabbd.com",
		},
		{
			ID:          "4",
			Slug:        "mariyam-traders",
			Title:       "E-commerce Mariyam Traders",
			Subtitle:    "An E-commerce for local variety store in Khulna, Bangladesh",
			Description: "Production e-commerce platform built for Mariyam Traders, a local variety store in Khulna. Supports catalog & inventory management, point-of-sale sync, localized checkout (cash-on-delivery and local payment gateways), order tracking, delivery zone management, and a compact admin dashboard for day-to-day operations.",
			Problem:     "Local retailers lacked an easy-to-manage online storefront tailored to local payment methods, delivery constraints, and low-bandwidth mobile customers.",
			Solution:    "Delivered a mobile-first, production-ready storefront with real-time inventory synchronization to the in-store POS, localized payment options, flexible delivery and pickup workflows, automated order notifications, and an admin panel for product, order, and promotion management. Deployed with CI/CD, monitoring, backups and performance optimizations to ensure reliable production usage.",
			Role:        "Full-Stack Developer",
			Timeline:    "6 months",
			TechStack:   []string{"React", "Laravel", "MySQL", "Tailwind", "Payment API", "VPS Hosting"},
			Tags:        []string{"Web", "Client"},
			Screenshot:  "/uploads/DevNest/mariyamtraders.jpg",
			Images: []string{
				"https://images.unsplash.com/photo-1472851294608-062f824d29cc?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1563013544-824ae1b704d3?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1523474253046-8cd2748b5fd2?w=800&h=600&fit=crop",
			},
			DemoVideo:   "https://www.youtube.com/embed/dQw4w9WgXcQ",
			LiveLink:    "http://mariyamtraders.com",
			AIHighlight: "Real-time inventory sync, smart product recommendations, and optimized mobile UX for low-bandwidth environments",
		},
		{
			ID:          "5",
			Slug:        "auto-glide-hub",
			Title:       "Auto Glide Hub",
			Subtitle:    "Car marketplace & finance management system",
			Description: "A unified car selling showcase and financing platform that lets buyers browse stock, calculate payments, place orders for specific models, and verify auction provenance, all with quick financing options.",
			Problem:     "Buyers face fragmented experiences when shopping for cars and financing: unclear rates, slow approvals, no integrated payment tools, and limited auction verification.",
			Solution:    "Built Auto Glide Hub, a web platform combining a searchable stock catalogue, per-model ordering, an integrated payment & loan calculator, and auction verification. Features include competitive rates starting from 4.99% APR for qualified buyers, flexible terms from 12 to 84 months, and pre-approval within 24-48 hours. The platform also provides real-time stock availability, model configurators, and auction provenance checks powered by automated verification workflows.",
			Role:        "Full-Stack Engineer",
			Timeline:    "4 months",
			TechStack:   []string{"React", "TypeScript", "Docker", "Kubernetes", "OpenAI Codex"},
			Tags:        []string{"AI", "Web", "Open Source"},
			Screenshot:  "/uploads/DevNest/auto-glide-hub.jpg",
			LiveLink:    "https://auto-glide-hub.vercel.app",
			SourceCode:  "https://github.com/intelleeo/auto-glide-hub",
			AIHighlight: "GPT-powered automated conversational agents for customer support",
		},
		{
			ID:          "6",
			Slug:        "global-chronicle-news",
			Title:       "Global Chronicle News",
			Subtitle:    "AI-first newsroom and personalization engine",
			Description: "An AI-driven news platform that ingests, verifies, summarizes, and personalizes breaking news in real time for readers and editors.",
			Problem:     "Newsrooms struggle to curate trustworthy, multilingual content at speed while delivering personalized experiences that increase retention.",
			Solution:    "Built a pipeline that ingests from RSS, wires, and social streams; de-duplicates and clusters stories with embeddings; runs citation-backed summaries, translation, and entity linking; flags bias/toxicity; and ranks feeds per reader using contextual bandits and vector profiles. Editors get an AI co-pilot for headline/SEO suggestions, timeline building, and fact-checking with source citations. Auto-generates newsletters and social posts with A/B testing.",
			Role:        "Full-Stack Developer & AI Engineer",
			Timeline:    "5 months",
			TechStack:   []string{"Vue.js", "Laravel", "MySQL", "OpenAI", "LangChain", "Meilisearch", "Redis", "Social APIs"},
			Tags:        []string{"AI", "Web", "Client"},
			Screenshot:  "/uploads/DevNest/globalcronicle.png",
			LiveLink:    "https://globalcronicle.vercel.app/",
			AIHighlight: "Real-time ingestion + RAG-backed fact-checking, multilingual summarization, and personalized ranking with contextual bandits and reader vectors",
		},
	}
}

type techSeed struct {
	name     string
	category domain.TechCategory
	icon     string
	color    string
}

var technologySeeds = []techSeed{
	{"React", domain.CategoryFrontend, "⚛️", "#61DAFB"},
	{"Vue.js", domain.CategoryFrontend, "🟢", "#4FC08D"},
	{"Next.js", domain.CategoryFrontend, "▲", "#000000"},
	{"TypeScript", domain.CategoryFrontend, "📘", "#3178C6"},
	{"TailwindCSS", domain.CategoryFrontend, "🎨", "#06B6D4"},

	{"Node.js", domain.CategoryBackend, "🟢", "#339933"},
	{"Python", domain.CategoryBackend, "🐍", "#3776AB"},
	{"Laravel", domain.CategoryBackend, "🚀", "#FF2D20"},
	{"Express.js", domain.CategoryBackend, "⚡", "#000000"},

	{"OpenAI", domain.CategoryAIML, "🤖", "#412991"},
	{"TensorFlow", domain.CategoryAIML, "🧠", "#FF6F00"},
	{"PyTorch", domain.CategoryAIML, "🔥", "#EE4C2C"},
	{"Hugging Face", domain.CategoryAIML, "🤗", "#FFD21E"},
	{"LangChain", domain.CategoryAIML, "⛓️", "#1C3C3C"},

	{"React Native", domain.CategoryMobile, "📱", "#61DAFB"},
	{"Expo", domain.CategoryMobile, "🚀", "#000020"},
	{"Flutter", domain.CategoryMobile, "💙", "#02569B"},

	{"MongoDB", domain.CategoryDatabase, "🍃", "#47A248"},
	{"PostgreSQL", domain.CategoryDatabase, "🐘", "#336791"},
	{"Redis", domain.CategoryDatabase, "🔴", "#DC382D"},
	{"Firebase", domain.CategoryDatabase, "🔥", "#FFCA28"},

	{"Docker", domain.CategoryTools, "🐳", "#2496ED"},
	{"Kubernetes", domain.CategoryTools, "☸️", "#326CE5"},
	{"AWS", domain.CategoryTools, "☁️", "#FF9900"},
	{"Vercel", domain.CategoryTools, "▲", "#000000"},
	{"GitHub", domain.CategoryTools, "🐙", "#181717"},
}

// defaultTechnologies derives stable ids from the names so seeded records
// can be addressed individually.
func defaultTechnologies() []domain.Technology {
	out := make([]domain.Technology, 0, len(technologySeeds))
	for _, s := range technologySeeds {
		out = append(out, domain.Technology{
			ID:       Slugify(s.name),
			Name:     s.name,
			Category: s.category,
			Icon:     s.icon,
			Color:    s.color,
		})
	}
	return out
}

func defaultTeam() []domain.TeamMember {
	return []domain.TeamMember{
		{
			ID:              "1",
			Name:            "John Doe",
			Position:        "CEO",
			Image:           "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=500&fit=crop",
			Bio:             "Visionary leader with 15+ years in AI and technology innovation",
			CertificationID: "CEO-001-2024",
			Skills:          []string{"Strategic Planning", "AI Strategy", "Business Development"},
			Email:           "john.doe@intelleeo.com",
			IsCXO:           true,
		},
		{
			ID:              "2",
			Name:            "Jane Smith",
			Position:        "CTO",
			Image:           "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=500&fit=crop",
			Bio:             "Technical expert specializing in AI architecture and scalable solutions",
			CertificationID: "CTO-002-2024",
			Skills:          []string{"AI Architecture", "Cloud Computing", "Technical Leadership"},
			Email:           "jane.smith@intelleeo.com",
			IsCXO:           true,
		},
		{
			ID:              "3",
			Name:            "Mike Johnson",
			Position:        "COO",
			Image:           "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=500&fit=crop",
			Bio:             "Operations specialist ensuring seamless project delivery and client satisfaction",
			CertificationID: "COO-003-2024",
			Skills:          []string{"Operations Management", "Project Delivery", "Client Relations"},
			Email:           "mike.johnson@intelleeo.com",
			IsCXO:           true,
		},
		{
			ID:              "4",
			Name:            "Sarah Williams",
			Position:        "Senior AI Engineer",
			Image:           "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=500&fit=crop",
			Bio:             "ML expert with deep experience in NLP and computer vision",
			CertificationID: "ENG-004-2024",
			Skills:          []string{"Machine Learning", "NLP", "Computer Vision", "Python"},
			Email:           "sarah.williams@intelleeo.com",
		},
		{
			ID:              "5",
			Name:            "David Brown",
			Position:        "Full Stack Developer",
			Image:           "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=500&fit=crop",
			Bio:             "Full-stack developer specializing in React and Node.js",
			CertificationID: "DEV-005-2024",
			Skills:          []string{"React", "Node.js", "TypeScript", "Cloud Deployment"},
			Email:           "david.brown@intelleeo.com",
		},
		{
			ID:              "6",
			Name:            "Emily Davis",
			Position:        "UI/UX Designer",
			Image:           "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400&h=500&fit=crop",
			Bio:             "Creative designer focused on user-centered AI interfaces",
			CertificationID: "DES-006-2024",
			Skills:          []string{"UI Design", "UX Research", "Figma", "Design Systems"},
			Email:           "emily.davis@intelleeo.com",
		},
	}
}

func defaultTestimonials() []domain.Testimonial {
	return []domain.Testimonial{
		{
			ID:         "1",
			ClientName: "Sarah Johnson",
			Company:    "TechStart Inc.",
			Position:   "CEO",
			Quote:      "intelleeo transformed our business with their AI solutions. The team delivered beyond our expectations, and the results speak for themselves - 40% increase in efficiency.",
			Rating:     5,
			ImageURL:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop",
			Visible:    true,
		},
		{
			ID:         "2",
			ClientName: "Michael Chen",
			Company:    "DataFlow Solutions",
			Position:   "CTO",
			Quote:      "Working with intelleeo was a game-changer. Their expertise in AI and modern web technologies helped us launch our product 2 months ahead of schedule.",
			Rating:     5,
			ImageURL:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop",
			Visible:    true,
		},
		{
			ID:         "3",
			ClientName: "Emily Rodriguez",
			Company:    "HealthTech Pro",
			Position:   "Product Manager",
			Quote:      "The attention to detail and commitment to quality is unmatched. intelleeo delivered a healthcare platform that our users love.",
			Rating:     5,
			ImageURL:   "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop",
			Visible:    true,
		},
		{
			ID:         "4",
			ClientName: "David Park",
			Company:    "RetailMax",
			Position:   "Operations Director",
			Quote:      "From concept to deployment, the intelleeo team was professional, responsive, and delivered exceptional results. Highly recommend!",
			Rating:     5,
			ImageURL:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop",
			Visible:    true,
		},
	}
}

func defaultServices() []domain.Service {
	return []domain.Service{
		{
			ID:          "1",
			Title:       "AI Development",
			Description: "Custom AI solutions including machine learning models, natural language processing, computer vision, and intelligent automation systems.",
			Icon:        "Brain",
			Features:    []string{"Custom ML Models", "NLP & Chatbots", "Computer Vision", "AI Integration", "Predictive Analytics"},
			PriceHint:   "Starting from $5,000",
			Order:       1,
			Visible:     true,
		},
		{
			ID:          "2",
			Title:       "Web Applications",
			Description: "Full-stack web development using modern frameworks and technologies. Scalable, secure, and user-friendly applications.",
			Icon:        "Globe",
			Features:    []string{"React/Next.js Apps", "Backend APIs", "Database Design", "Cloud Deployment", "Performance Optimization"},
			PriceHint:   "Starting from $3,000",
			Order:       2,
			Visible:     true,
		},
		{
			ID:          "3",
			Title:       "Mobile Development",
			Description: "Cross-platform mobile applications for iOS and Android using React Native and Flutter with native-like performance.",
			Icon:        "Smartphone",
			Features:    []string{"iOS & Android", "Cross-Platform", "Native Features", "App Store Launch", "Push Notifications"},
			PriceHint:   "Starting from $4,000",
			Order:       3,
			Visible:     true,
		},
		{
			ID:          "4",
			Title:       "Tech Consulting",
			Description: "Strategic technology consulting to help you make informed decisions about your tech stack, architecture, and digital transformation.",
			Icon:        "Lightbulb",
			Features:    []string{"Tech Audit", "Architecture Review", "Stack Selection", "Team Training", "Digital Strategy"},
			PriceHint:   "Starting from $150/hr",
			Order:       4,
			Visible:     true,
		},
	}
}
