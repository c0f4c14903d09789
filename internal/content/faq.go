package content

import "modern-podcast/internal/models"

var faqItems = []models.FAQItem{
	{
		ID:       1,
		Question: "How often do you release new episodes?",
		Answer:   "We release new episodes every Monday morning at 6 AM EST. Occasionally, we may release bonus episodes mid-week for special content or interviews.",
		Category: models.CategoryGeneral,
		Order:    1,
	},
	{
		ID:       2,
		Question: "Where can I listen to the podcast?",
		Answer:   "You can listen directly on our website or find us on all major podcast platforms including Apple Podcasts, Spotify, Google Podcasts, Amazon Music, and more.",
		Category: models.CategoryListening,
		Order:    2,
	},
	{
		ID:       3,
		Question: "How can I submit a guest suggestion or topic idea?",
		Answer:   "We love hearing from our listeners! You can submit guest suggestions or topic ideas by emailing us at hello@modernpodcast.com with the subject line 'Topic Suggestion'. We read every submission and consider them for future episodes.",
		Category: models.CategorySubmission,
		Order:    3,
	},
	{
		ID:       4,
		Question: "Can I share episodes on social media?",
		Answer:   "Absolutely! We encourage you to share episodes with your friends and networks. Each episode page has share buttons for easy posting to social media platforms.",
		Category: models.CategoryGeneral,
		Order:    4,
	},
	{
		ID:       5,
		Question: "Do you have transcripts available?",
		Answer:   "Yes, we're working on providing full transcripts for all episodes to improve accessibility. Check back soon for transcript links on each episode page.",
		Category: models.CategoryTechnical,
		Order:    5,
	},
	{
		ID:       6,
		Question: "How long are episodes typically?",
		Answer:   "Most episodes run between 35-50 minutes, giving us enough time to explore topics in depth while respecting your time. Check the duration listed for each episode before listening.",
		Category: models.CategoryGeneral,
		Order:    6,
	},
	{
		ID:       7,
		Question: "Can I advertise or sponsor an episode?",
		Answer:   "We're open to sponsorship opportunities that align with our values and audience. For sponsorship inquiries, please email partnerships@modernpodcast.com with details about your organization.",
		Category: models.CategoryGeneral,
		Order:    7,
	},
	{
		ID:       8,
		Question: "I'm having trouble playing episodes. What should I do?",
		Answer:   "First, make sure you have a stable internet connection and try refreshing the page. If issues persist, try a different browser or clear your browser cache. You can also download episodes from podcast platforms as an alternative.",
		Category: models.CategoryTechnical,
		Order:    8,
	},
	{
		ID:       9,
		Question: "Will there be a second season?",
		Answer:   "Yes! We're already planning season two with exciting new topics and guests. Subscribe to stay updated on our release schedule and never miss an episode.",
		Category: models.CategoryGeneral,
		Order:    9,
	},
	{
		ID:       10,
		Question: "How can I support the podcast?",
		Answer:   "The best ways to support us are: subscribe and listen regularly, leave reviews on podcast platforms, share episodes with friends, and engage with us on social media. Your support helps us grow and improve!",
		Category: models.CategoryGeneral,
		Order:    10,
	},
}
