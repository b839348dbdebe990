package extractor

// samplePresentation returns fixed sample content for PowerPoint uploads.
// Real PPTX parsing is not implemented; the returned deck is honest about
// being sample material so it cannot be mistaken for the uploaded file.
func samplePresentation() *Document {
	return &Document{
		Text: "Digital Marketing Fundamentals (Sample Content)\n" +
			"Introduction to Digital Marketing\n" +
			"Digital Marketing is the promotion of products through online channels. " +
			"It is important to understand your target audience before launching a campaign. " +
			"Studies show that about 60% of consumers research a product online before buying.\n" +
			"Core Channels\n" +
			"Search engine optimization improves organic visibility over time. " +
			"Paid advertising delivers immediate reach, for example, search ads and display banners. " +
			"Email marketing remains one of the highest-converting channels available today.\n" +
			"Measuring Success\n" +
			"Conversion tracking connects spending to outcomes. " +
			"First, define the metrics that matter to your business. " +
			"Then, instrument every campaign before it goes live. " +
			"Finally, review performance weekly and adjust budgets accordingly.",
		Headings: []string{
			"Digital Marketing Fundamentals (Sample Content)",
			"Introduction to Digital Marketing",
			"Core Channels",
			"Measuring Success",
		},
		Sections: []string{
			"Digital Marketing is the promotion of products through online channels. " +
				"It is important to understand your target audience before launching a campaign.",
			"Search engine optimization improves organic visibility over time. " +
				"Paid advertising delivers immediate reach, for example, search ads and display banners.",
			"Conversion tracking connects spending to outcomes. " +
				"First, define the metrics that matter to your business.",
		},
	}
}
