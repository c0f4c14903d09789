package content

import "modern-podcast/internal/models"

var about = models.AboutContent{
	Title:   "Modern Podcast",
	Tagline: "Exploring ideas that shape our future",
	Mission: "Our mission is to bring thought-provoking conversations and insights to curious minds around the world. We believe in the power of dialogue to bridge perspectives, spark creativity, and deepen understanding of the complex issues shaping our modern society.",
	Story: "Modern Podcast was born from a simple idea: create a space for meaningful conversations about the topics that matter most in our rapidly changing world. Founded in early 2025, we started with a conviction that thoughtful, accessible discussions could help people navigate the intersection of technology, culture, science, and society.\n\n" +
		"What began as casual conversations between friends evolved into a full-fledged podcast exploring everything from artificial intelligence to sustainable living, from the science of happiness to the future of work. We're passionate about making complex topics approachable while maintaining intellectual rigor and respecting diverse perspectives.\n\n" +
		"Our approach is conversational but well-researched, curious but critical, optimistic but realistic. We're not afraid to tackle difficult questions, and we're always learning alongside our listeners. Each week, we dive deep into a new topic, bringing together insights from experts, practitioners, and everyday people who are shaping our collective future.",
	Hosts: []models.Host{
		{
			Name:  "Jordan Rivers",
			Role:  "Host & Producer",
			Bio:   "Jordan is a journalist and storyteller with over a decade of experience in podcasting and digital media. With a background in science communication, Jordan brings curiosity and clarity to complex topics, making them accessible without sacrificing depth. When not recording, you'll find Jordan exploring hiking trails or experimenting with new cooking techniques.",
			Photo: HostPhotoPath("jordan"),
		},
		{
			Name:  "Alex Chen",
			Role:  "Co-Host & Research Lead",
			Bio:   "Alex combines a background in sociology with a passion for technology and culture. As the research lead, Alex ensures every episode is grounded in solid evidence while staying engaging and relevant. Alex's favorite topics include urban planning, digital communities, and the evolving nature of work. Outside the studio, Alex volunteers with local community organizations and practices meditation.",
			Photo: HostPhotoPath("alex"),
		},
	},
	Contact: models.ContactInfo{
		Email: "hello@modernpodcast.com",
		Social: models.SocialLinks{
			Twitter:   "https://twitter.com/modernpodcast",
			Instagram: "https://instagram.com/modernpodcast",
			Facebook:  "https://facebook.com/modernpodcast",
		},
	},
}
