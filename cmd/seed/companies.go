package main

import "jobboard-be/internal/entity"

func companies() []seedCompany {
	return []seedCompany{
		{
			Name:            "TechFlow Analytics",
			Description:     "AI-powered analytics platform helping enterprises make data-driven decisions with real-time insights and predictive modeling.",
			Locations:       []entity.Location{{City: "San Francisco", State: "CA"}, {City: "Austin", State: "TX"}},
			Url:             "https://techflow.io",
			CompanySize:     "50-200",
			OwnershipType:   "private",
			FundingType:     "venture",
			AmountRaised:    int64Ptr(15000000),
			LastRoundLetter: strPtr("A"),
			Jobs: []seedJob{
				{
					Title:        "Senior Full Stack Engineer",
					Summary:      "Build scalable microservices and customer-facing dashboards on real-time data pipelines.",
					Locations:    []entity.Location{{City: "San Francisco", State: "CA"}},
					Url:          "https://techflow.io/careers/senior-engineer",
					RemotePolicy: entity.RemotePolicyHybrid,
					DaysPerWeek:  intPtr(3),
					SalaryMin:    intPtr(165000),
					SalaryMax:    intPtr(210000),
					TechStack:    []string{"TypeScript", "React", "Node.js", "PostgreSQL", "AWS", "Docker"},
				},
				{
					Title:        "Machine Learning Engineer",
					Summary:      "Develop ML models for predictive analytics on distributed systems.",
					Locations:    []entity.Location{{City: "Austin", State: "TX"}, {City: "Remote", State: "US"}},
					Url:          "https://techflow.io/careers/ml-engineer",
					RemotePolicy: entity.RemotePolicyRemote,
					SalaryMin:    intPtr(180000),
					SalaryMax:    intPtr(240000),
					TechStack:    []string{"Python", "TensorFlow", "PyTorch", "Kubernetes", "Apache Spark"},
				},
			},
		},
		{
			Name:            "CloudVault Security",
			Description:     "Enterprise cybersecurity platform providing zero-trust network access and threat detection for Fortune 500 companies.",
			Locations:       []entity.Location{{City: "Seattle", State: "WA"}},
			Url:             "https://cloudvault.com",
			CompanySize:     "200-500",
			OwnershipType:   "private",
			FundingType:     "venture",
			AmountRaised:    int64Ptr(45000000),
			LastRoundLetter: strPtr("B"),
			Jobs: []seedJob{
				{
					Title:        "Security Engineer",
					Summary:      "Design and implement security protocols for enterprise clients across compliance frameworks.",
					Locations:    []entity.Location{{City: "Seattle", State: "WA"}},
					Url:          "https://cloudvault.com/jobs/security-engineer",
					RemotePolicy: entity.RemotePolicyHybrid,
					DaysPerWeek:  intPtr(2),
					SalaryMin:    intPtr(150000),
					SalaryMax:    intPtr(195000),
					TechStack:    []string{"Go", "Python", "Linux", "Kubernetes", "Terraform", "Ansible"},
				},
				{
					Title:        "DevOps Engineer",
					Summary:      "Maintain and scale infrastructure on AWS with CI/CD, monitoring, and automation tools.",
					Locations:    []entity.Location{{City: "Seattle", State: "WA"}},
					Url:          "https://cloudvault.com/jobs/devops",
					RemotePolicy: entity.RemotePolicyInOffice,
					SalaryMin:    intPtr(135000),
					SalaryMax:    intPtr(175000),
					TechStack:    []string{"AWS", "Docker", "Kubernetes", "Terraform", "Jenkins", "Prometheus"},
				},
			},
		},
		{
			Name:          "GreenCode Solutions",
			Description:   "Sustainable software development consulting firm helping companies reduce their carbon footprint through efficient cloud architecture.",
			Locations:     []entity.Location{{City: "Portland", State: "OR"}, {City: "Denver", State: "CO"}},
			Url:           "https://greencode.dev",
			CompanySize:   "10-50",
			OwnershipType: "private",
			FundingType:   "bootstrapped",
			Jobs: []seedJob{
				{
					Title:        "Senior Software Consultant",
					Summary:      "Lead green software initiatives for clients with a background in cloud optimization and sustainability metrics.",
					Locations:    []entity.Location{{City: "Remote", State: "US"}},
					Url:          "https://greencode.dev/careers/consultant",
					RemotePolicy: entity.RemotePolicyRemote,
					SalaryMin:    intPtr(140000),
					SalaryMax:    intPtr(180000),
					TechStack:    []string{"Python", "AWS", "Terraform", "CloudWatch", "Prometheus", "Grafana"},
				},
				{
					Title:        "Frontend Developer",
					Summary:      "Build performant web applications with a focus on minimal bundle sizes and efficient rendering.",
					Locations:    []entity.Location{{City: "Portland", State: "OR"}},
					Url:          "https://greencode.dev/careers/frontend",
					RemotePolicy: entity.RemotePolicyHybrid,
					DaysPerWeek:  intPtr(2),
					SalaryMin:    intPtr(115000),
					SalaryMax:    intPtr(150000),
					TechStack:    []string{"React", "Next.js", "TypeScript", "Tailwind CSS", "Vite"},
				},
			},
		},
		{
			Name:            "DataForge Industries",
			Description:     "Enterprise data platform enabling companies to unify their data sources and build custom analytics solutions.",
			Locations:       []entity.Location{{City: "New York", State: "NY"}, {City: "Boston", State: "MA"}},
			Url:             "https://dataforge.io",
			CompanySize:     "500-1000",
			OwnershipType:   "public",
			FundingType:     "venture",
			AmountRaised:    int64Ptr(120000000),
			LastRoundLetter: strPtr("C"),
			Jobs: []seedJob{
				{
					Title:        "Data Engineer",
					Summary:      "Build ETL pipelines processing terabytes of data daily with orchestration and warehouse tooling.",
					Locations:    []entity.Location{{City: "New York", State: "NY"}},
					Url:          "https://dataforge.io/careers/data-engineer",
					RemotePolicy: entity.RemotePolicyHybrid,
					DaysPerWeek:  intPtr(3),
					SalaryMin:    intPtr(155000),
					SalaryMax:    intPtr(200000),
					TechStack:    []string{"Python", "Apache Spark", "Apache Airflow", "Snowflake", "dbt", "PostgreSQL"},
				},
				{
					Title:        "Product Manager",
					Summary:      "Own the roadmap for data integration products, working closely with engineering and customers.",
					Locations:    []entity.Location{{City: "Boston", State: "MA"}},
					Url:          "https://dataforge.io/careers/pm",
					RemotePolicy: entity.RemotePolicyInOffice,
					SalaryMin:    intPtr(145000),
					SalaryMax:    intPtr(185000),
					TechStack:    []string{},
				},
			},
		},
		{
			Name:            "MediChart Health",
			Description:     "Healthcare technology platform connecting patients with providers and streamlining medical record management.",
			Locations:       []entity.Location{{City: "Chicago", State: "IL"}},
			Url:             "https://medichart.com",
			CompanySize:     "200-500",
			OwnershipType:   "private",
			FundingType:     "venture",
			AmountRaised:    int64Ptr(35000000),
			LastRoundLetter: strPtr("B"),
			Jobs: []seedJob{
				{
					Title:        "Full Stack Developer",
					Summary:      "Develop HIPAA-compliant healthcare applications with a React frontend and Python backend.",
					Locations:    []entity.Location{{City: "Chicago", State: "IL"}},
					Url:          "https://medichart.com/careers/developer",
					RemotePolicy: entity.RemotePolicyRemote,
					SalaryMin:    intPtr(130000),
					SalaryMax:    intPtr(170000),
					TechStack:    []string{"React", "Python", "Django", "PostgreSQL", "Redis", "Docker"},
				},
				{
					Title:        "QA Automation Engineer",
					Summary:      "Build comprehensive test suites for a healthcare platform across browser automation tooling.",
					Locations:    []entity.Location{{City: "Chicago", State: "IL"}},
					Url:          "https://medichart.com/careers/qa",
					RemotePolicy: entity.RemotePolicyHybrid,
					DaysPerWeek:  intPtr(2),
					SalaryMin:    intPtr(105000),
					SalaryMax:    intPtr(140000),
					TechStack:    []string{"Python", "Selenium", "Playwright", "Postman", "Jest", "Cypress"},
				},
			},
		},
		{
			Name:          "EduTech Innovations",
			Description:   "Revolutionizing online learning with interactive courses, AI tutoring, and personalized learning paths for students worldwide.",
			Locations:     []entity.Location{{City: "San Diego", State: "CA"}},
			Url:           "https://edutech.io",
			CompanySize:   "50-200",
			OwnershipType: "private",
			FundingType:   "bootstrapped",
			Jobs: []seedJob{
				{
					Title:        "React Native Developer",
					Summary:      "Build mobile apps for iOS and Android with smooth animations and offline support.",
					Locations:    []entity.Location{{City: "San Diego", State: "CA"}},
					Url:          "https://edutech.io/careers/mobile-dev",
					RemotePolicy: entity.RemotePolicyHybrid,
					DaysPerWeek:  intPtr(3),
					SalaryMin:    intPtr(120000),
					SalaryMax:    intPtr(155000),
					TechStack:    []string{"React Native", "TypeScript", "Expo", "Firebase", "Redux"},
				},
				{
					Title:        "AI/ML Researcher",
					Summary:      "Research adaptive learning systems and natural language processing for educational content.",
					Locations:    []entity.Location{{City: "Remote", State: "US"}},
					Url:          "https://edutech.io/careers/ml-researcher",
					RemotePolicy: entity.RemotePolicyRemote,
					SalaryMin:    intPtr(160000),
					SalaryMax:    intPtr(215000),
					TechStack:    []string{"Python", "PyTorch", "NLP", "Transformers", "LangChain"},
				},
			},
		},
		{
			Name:            "FinServe Technologies",
			Description:     "Digital banking platform providing APIs for fintech companies to build financial products quickly and securely.",
			Locations:       []entity.Location{{City: "Charlotte", State: "NC"}, {City: "Miami", State: "FL"}},
			Url:             "https://finserve.tech",
			CompanySize:     "100-500",
			OwnershipType:   "private",
			FundingType:     "venture",
			AmountRaised:    int64Ptr(75000000),
			LastRoundLetter: strPtr("B"),
			Jobs: []seedJob{
				{
					Title:        "Backend Engineer (Go)",
					Summary:      "Build high-performance financial APIs with an understanding of financial regulations and PCI-DSS.",
					Locations:    []entity.Location{{City: "Charlotte", State: "NC"}},
					Url:          "https://finserve.tech/jobs/backend-go",
					RemotePolicy: entity.RemotePolicyInOffice,
					SalaryMin:    intPtr(150000),
					SalaryMax:    intPtr(190000),
					TechStack:    []string{"Go", "PostgreSQL", "Redis", "gRPC", "Kafka", "AWS"},
				},
				{
					Title:        "Security Compliance Specialist",
					Summary:      "Ensure the platform meets financial regulations and security standards: SOC 2, PCI-DSS, banking compliance.",
					Locations:    []entity.Location{{City: "Miami", State: "FL"}},
					Url:          "https://finserve.tech/jobs/compliance",
					RemotePolicy: entity.RemotePolicyHybrid,
					DaysPerWeek:  intPtr(2),
					SalaryMin:    intPtr(125000),
					SalaryMax:    intPtr(160000),
					TechStack:    []string{},
				},
			},
		},
		{
			Name:            "AgriTech Systems",
			Description:     "IoT and AI-powered farming solutions helping farmers optimize crop yields, manage resources, and reduce waste.",
			Locations:       []entity.Location{{City: "Des Moines", State: "IA"}},
			Url:             "https://agritech-systems.com",
			CompanySize:     "10-50",
			OwnershipType:   "private",
			FundingType:     "venture",
			AmountRaised:    int64Ptr(8000000),
			LastRoundLetter: strPtr("Seed"),
			Jobs: []seedJob{
				{
					Title:        "IoT Firmware Engineer",
					Summary:      "Develop embedded systems for agricultural sensors on embedded Linux.",
					Locations:    []entity.Location{{City: "Des Moines", State: "IA"}},
					Url:          "https://agritech-systems.com/careers/firmware",
					RemotePolicy: entity.RemotePolicyInOffice,
					SalaryMin:    intPtr(110000),
					SalaryMax:    intPtr(145000),
					TechStack:    []string{"C", "C++", "Embedded Linux", "Rust", "MQTT", "Zigbee"},
				},
				{
					Title:        "Data Scientist",
					Summary:      "Analyze sensor data to create predictive models for crop health and weather patterns.",
					Locations:    []entity.Location{{City: "Des Moines", State: "IA"}, {City: "Remote", State: "US"}},
					Url:          "https://agritech-systems.com/careers/data-scientist",
					RemotePolicy: entity.RemotePolicyHybrid,
					DaysPerWeek:  intPtr(3),
					SalaryMin:    intPtr(120000),
					SalaryMax:    intPtr(160000),
					TechStack:    []string{"Python", "Pandas", "NumPy", "Scikit-learn", "TensorFlow", "Jupyter"},
				},
			},
		},
		{
			Name:            "StreamSync Media",
			Description:     "Video streaming infrastructure and CDN services powering live events and on-demand content for media companies.",
			Locations:       []entity.Location{{City: "Los Angeles", State: "CA"}, {City: "New York", State: "NY"}},
			Url:             "https://streamsync.com",
			CompanySize:     "200-500",
			OwnershipType:   "private",
			FundingType:     "venture",
			AmountRaised:    int64Ptr(60000000),
			LastRoundLetter: strPtr("B"),
			Jobs: []seedJob{
				{
					Title:        "Video Streaming Engineer",
					Summary:      "Optimize video encoding and streaming protocols: HLS, DASH, and codec technologies.",
					Locations:    []entity.Location{{City: "Los Angeles", State: "CA"}},
					Url:          "https://streamsync.com/careers/streaming-engineer",
					RemotePolicy: entity.RemotePolicyInOffice,
					SalaryMin:    intPtr(160000),
					SalaryMax:    intPtr(205000),
					TechStack:    []string{"C++", "FFmpeg", "HLS", "DASH", "WebRTC", "AWS MediaLive"},
				},
				{
					Title:        "Backend Engineer (Scalability)",
					Summary:      "Build distributed systems handling millions of concurrent video streams.",
					Locations:    []entity.Location{{City: "New York", State: "NY"}},
					Url:          "https://streamsync.com/careers/backend-scalability",
					RemotePolicy: entity.RemotePolicyRemote,
					SalaryMin:    intPtr(170000),
					SalaryMax:    intPtr(220000),
					TechStack:    []string{"Go", "Kubernetes", "Redis", "Kafka", "Cassandra", "Grafana"},
				},
			},
		},
		{
			Name:          "CodeCraft Studios",
			Description:   "Boutique software agency specializing in custom web applications and mobile apps for startups and mid-size companies.",
			Locations:     []entity.Location{{City: "Boulder", State: "CO"}},
			Url:           "https://codecraft.studio",
			CompanySize:   "10-50",
			OwnershipType: "private",
			FundingType:   "bootstrapped",
			Jobs: []seedJob{
				{
					Title:        "Senior Full Stack Developer",
					Summary:      "Lead development on client projects across multiple frameworks, working with non-technical stakeholders.",
					Locations:    []entity.Location{{City: "Boulder", State: "CO"}},
					Url:          "https://codecraft.studio/careers/senior-dev",
					RemotePolicy: entity.RemotePolicyHybrid,
					DaysPerWeek:  intPtr(2),
					SalaryMin:    intPtr(130000),
					SalaryMax:    intPtr(165000),
					TechStack:    []string{"TypeScript", "Next.js", "React", "Node.js", "PostgreSQL", "Prisma"},
				},
				{
					Title:        "UI/UX Designer Developer",
					Summary:      "Design and implement user-friendly interfaces; strong design skills and React, Figma, design systems.",
					Locations:    []entity.Location{{City: "Boulder", State: "CO"}},
					Url:          "https://codecraft.studio/careers/designer-dev",
					RemotePolicy: entity.RemotePolicyRemote,
					SalaryMin:    intPtr(110000),
					SalaryMax:    intPtr(145000),
					TechStack:    []string{"React", "Figma", "Tailwind CSS", "Framer Motion", "Storybook"},
				},
			},
		},
	}
}
