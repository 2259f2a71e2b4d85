package content

// Field defaults used when a record leaves an optional field empty.
const (
	DefaultHeroHeadline    = "Redefining Mental Health Access and Quality"
	DefaultHeroSubheadline = "Empowering global workforces with evidence-based mental healthcare"
	DefaultCTAText         = "Get Started"
	DefaultCTALink         = "#book-demo"

	DefaultCTAHeadline = "Ready to Transform Your Organization's Mental Health?"
	DefaultCTABody     = "Join over 4 million members worldwide who trust Intellect for evidence-based mental health support. Start your journey to better workplace wellness today."
	DefaultDemoText    = "Book a Demo"
	DefaultContactText = "Contact Sales"
	DefaultContactLink = "#contact"

	DefaultIntegrationCategory = "Other"
	DefaultFAQCategory         = "General"
	DefaultPageDescription     = "Learn about Intellect's mission to redefine mental health access."
)

// Default headings for the homepage sections. A homepage section record of
// the matching kind overrides title and subtitle.
var (
	StatsHeading = SectionHeading{
		Eyebrow:  "📊 Global Impact",
		Title:    "Proven Results Worldwide",
		Subtitle: "Real impact, real results. See how Intellect is transforming mental health support globally.",
	}
	SolutionsHeading = SectionHeading{
		Eyebrow:  "💡 Our Solutions",
		Title:    "Tailored Mental Health Solutions",
		Subtitle: "Comprehensive mental health support designed to meet your organization's unique needs and challenges.",
	}
	FeaturesHeading = SectionHeading{
		Eyebrow:  "⚡ Platform Features",
		Title:    "Everything You Need for Mental Wellness",
		Subtitle: "Comprehensive mental health tools designed for the modern workplace, backed by science and built for scale.",
	}
	IntegrationsHeading = SectionHeading{
		Eyebrow:  "🔗 Integrations",
		Title:    "Connects with Your Existing Tools",
		Subtitle: "Seamlessly integrate with the tools your team already uses. No disruption, just enhanced mental wellness.",
	}
	PricingHeading = SectionHeading{
		Eyebrow:  "💎 Pricing Plans",
		Title:    "Simple, Transparent Pricing",
		Subtitle: "Choose the plan that fits your organization's needs. All plans include our core mental health platform.",
	}
	TestimonialsHeading = SectionHeading{
		Eyebrow:  "💬 Success Stories",
		Title:    "Trusted by HR Leaders Worldwide",
		Subtitle: "Discover how organizations like yours have transformed their workplace mental health with Intellect.",
	}
	FAQHeading = SectionHeading{
		Eyebrow:  "❓ FAQ",
		Title:    "Frequently Asked Questions",
		Subtitle: "Answers to the questions people leaders ask us most.",
	}
)

// DefaultHero is the hero shown when no hero section exists.
func DefaultHero() HeroView {
	return HeroView{
		Headline:    DefaultHeroHeadline,
		Subheadline: DefaultHeroSubheadline,
		CTAText:     DefaultCTAText,
		CTALink:     DefaultCTALink,
	}
}

// DefaultCTA is the closing call to action shown when no cta section exists.
func DefaultCTA() CTAView {
	return CTAView{
		Headline:      DefaultCTAHeadline,
		Body:          DefaultCTABody,
		PrimaryText:   DefaultDemoText,
		PrimaryLink:   DefaultCTALink,
		SecondaryText: DefaultContactText,
		SecondaryLink: DefaultContactLink,
	}
}

func DefaultFeatures() []FeatureView {
	return []FeatureView{
		{ID: "default-feature-1", Name: "Professional Therapy Sessions", Description: "Connect with licensed therapists through secure video sessions, available 24/7 in over 120 languages.", Benefit: "Immediate access to professional mental health support"},
		{ID: "default-feature-2", Name: "Personalized Self-Care", Description: "AI-powered recommendations for mindfulness exercises, mood tracking, and wellness activities tailored to your needs.", Benefit: "Build lasting mental wellness habits"},
		{ID: "default-feature-3", Name: "Analytics & Insights", Description: "Comprehensive reporting and analytics to track team wellbeing trends while maintaining complete privacy.", Benefit: "Data-driven decisions for workplace wellness"},
		{ID: "default-feature-4", Name: "24/7 Crisis Intervention", Description: "Immediate support for mental health emergencies with qualified crisis counselors available around the clock.", Benefit: "Peace of mind with emergency support"},
		{ID: "default-feature-5", Name: "Localized Mental Health", Description: "Mental health support adapted to local cultures, customs, and languages for truly inclusive care.", Benefit: "Culturally sensitive mental health support"},
		{ID: "default-feature-6", Name: "Seamless Integration", Description: "Easy integration with existing HR systems, SSO, and workplace tools for streamlined deployment.", Benefit: "Quick setup with existing infrastructure"},
	}
}

func DefaultIntegrations() []IntegrationView {
	return []IntegrationView{
		{ID: "default-integration-1", Name: "Slack Workspace", Description: "Get mental health reminders and access resources directly in Slack channels.", Category: "Communication"},
		{ID: "default-integration-2", Name: "Microsoft Teams", Description: "Seamless integration with Teams for wellness check-ins and session booking.", Category: "Communication"},
		{ID: "default-integration-3", Name: "Okta SSO", Description: "Single sign-on integration with enterprise identity management.", Category: "Security"},
		{ID: "default-integration-4", Name: "BambooHR", Description: "Connect with HR systems for seamless employee wellness tracking.", Category: "HR Systems"},
		{ID: "default-integration-5", Name: "Workday HCM", Description: "Integration with Workday for comprehensive employee wellness programs.", Category: "HR Systems"},
		{ID: "default-integration-6", Name: "Salesforce", Description: "Connect mental health metrics with employee performance insights.", Category: "CRM"},
	}
}

func DefaultPricingPlans() []PricingPlanView {
	return []PricingPlanView{
		{
			ID:            "default-plan-1",
			Name:          "Starter",
			Price:         "Contact Us",
			BillingPeriod: "per employee/month",
			Description:   "Perfect for small teams getting started with mental health support.",
			Features: []string{
				"Self-care tools and resources",
				"Basic wellness tracking",
				"Email support",
				"Mobile app access",
				"Basic analytics",
			},
			CTAText: "Get Started",
		},
		{
			ID:            "default-plan-2",
			Name:          "Professional",
			Price:         "Contact Us",
			BillingPeriod: "per employee/month",
			Description:   "Comprehensive mental health support for growing organizations.",
			Features: []string{
				"Everything in Starter",
				"1-on-1 therapy sessions",
				"Group therapy sessions",
				"Crisis support 24/7",
				"Advanced analytics",
				"Manager insights",
				"Priority support",
			},
			Popular: true,
			CTAText: "Most Popular",
		},
		{
			ID:            "default-plan-3",
			Name:          "Enterprise",
			Price:         "Custom Pricing",
			BillingPeriod: "volume discounts available",
			Description:   "Tailored solutions for large organizations with custom requirements.",
			Features: []string{
				"Everything in Professional",
				"Custom integrations",
				"Dedicated account manager",
				"Custom reporting",
				"SSO integration",
				"API access",
				"Training & onboarding",
				"SLA guarantees",
			},
			CTAText: "Contact Sales",
		},
	}
}

func DefaultSolutions() []SolutionView {
	return []SolutionView{
		{ID: "default-solution-1", Name: "Enterprise Mental Health", ShortDescription: "Comprehensive mental health support for your entire workforce with scalable solutions.", FullDescription: "Evidence-based therapy, self-care tools, and wellness programs designed for enterprise deployment.", Category: "Enterprise"},
		{ID: "default-solution-2", Name: "Content Moderation Support", ShortDescription: "Specialized mental health support for content moderation teams and trust & safety professionals.", FullDescription: "Targeted support for teams exposed to harmful content with specialized trauma-informed care.", Category: "Specialized"},
		{ID: "default-solution-3", Name: "Clinical Integration", ShortDescription: "Seamless integration with existing healthcare systems and clinical workflows.", FullDescription: "Professional mental health services that integrate with your existing healthcare infrastructure.", Category: "Healthcare"},
	}
}
