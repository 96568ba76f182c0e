package main

import (
	"fmt"
	"math/rand"
	"strings"

	"jobboard-be/internal/entity"
)

// generateEmploymentType picks a type with full_time weighted heavily.
func generateEmploymentType() string {
	types := []string{
		entity.EmploymentFullTime,
		entity.EmploymentPartTime,
		entity.EmploymentContract,
		entity.EmploymentTemporary,
		entity.EmploymentInternship,
	}
	weights := []float64{0.7, 0.1, 0.1, 0.05, 0.05}

	r := rand.Float64()
	cumulative := 0.0
	for i, t := range types {
		cumulative += weights[i]
		if r < cumulative {
			return t
		}
	}
	return entity.EmploymentFullTime
}

var allPerks = []string{
	"Free lunch", "Gym membership", "Flexible hours", "Unlimited PTO",
	"Stock options", "Learning budget", "Home office stipend",
	"Wellness program", "Pet-friendly office", "Game room",
	"Snacks & beverages", "Team outings", "Conference attendance",
	"Book budget", "Commuter benefits", "Catered breakfast",
	"On-site gym", "Massage therapy", "Yoga classes", "Happy hours",
	"Co-working space access",
}

var allBenefits = []string{
	"Health insurance", "Dental insurance", "Vision insurance",
	"401(k) matching", "Life insurance", "Disability insurance",
	"Parental leave", "FSA/HSA", "Mental health support",
	"Employee assistance program", "Tuition reimbursement",
	"Professional development", "Retirement plan", "Short-term disability",
	"Long-term disability", "Accident insurance", "Critical illness insurance",
}

// generatePerksAndBenefits leans bigger packages toward larger and public
// companies, and remote-friendly perks toward remote and hybrid roles.
func generatePerksAndBenefits(companySize, remotePolicy, ownershipType string) (perks, benefits []string) {
	isLarge := strings.Contains(companySize, "200") ||
		strings.Contains(companySize, "500") ||
		strings.Contains(companySize, "1000")
	isPublic := ownershipType == "public"

	numPerks := randBetween(3, 6)
	if isLarge {
		numPerks = randBetween(5, 8)
	}

	perkPool := allPerks
	if remotePolicy == entity.RemotePolicyRemote || remotePolicy == entity.RemotePolicyHybrid {
		perkPool = append(append([]string{}, allPerks...),
			"Home office stipend", "Flexible hours", "Co-working space access")
	}
	perks = pickUnique(perkPool, numPerks)

	numBenefits := randBetween(5, 8)
	if isPublic || isLarge {
		numBenefits = randBetween(8, 12)
	}
	benefits = pickUnique(allBenefits, numBenefits)

	return perks, benefits
}

// generateJobDescription assembles a realistic posting body from the
// curated summary, the company, and the tech stack.
func generateJobDescription(companyName, title, summary string, techStack []string, remotePolicy string) (description string, requirements, responsibilities []string) {
	isRemote := remotePolicy == entity.RemotePolicyRemote
	isHybrid := remotePolicy == entity.RemotePolicyHybrid

	intros := []string{
		fmt.Sprintf("Join %s as a %s and help shape the future of our platform. We're looking for someone passionate about building high-quality software that scales to millions of users.", companyName, title),
		fmt.Sprintf("At %s, we're building cutting-edge solutions that make a real impact. As a %s, you'll work alongside a talented team of engineers, designers, and product managers to deliver exceptional products.", companyName, title),
		fmt.Sprintf("We're seeking a %s to join our growing team at %s. This is an exciting opportunity to work on challenging problems, learn from experienced teammates, and contribute to products that customers love.", title, companyName),
	}

	teams := []string{
		"Our engineering team is collaborative, fast-moving, and values clean code and thoughtful architecture. We practice test-driven development, conduct regular code reviews, and believe in continuous learning.",
		"You'll be part of a cross-functional team that ships features frequently. We prioritize work-life balance, offer flexible scheduling, and encourage experimentation.",
		"The team operates in an agile environment with bi-weekly sprints. We emphasize pair programming, knowledge sharing sessions, and giving engineers autonomy to make technical decisions.",
	}

	workStyle := "Our office culture emphasizes collaboration, and we believe in-person interaction strengthens our team bonds."
	if isRemote {
		workStyle = "Since this is a fully remote position, strong communication skills and self-discipline are essential."
	} else if isHybrid {
		workStyle = "This hybrid role offers flexibility while maintaining team connection through regular in-office collaboration."
	}

	closing := summary
	if len(techStack) > 0 {
		closing = fmt.Sprintf("In this role, you'll primarily work with %s. %s", strings.Join(techStack, ", "), workStyle)
	}

	description = pickOne(intros) + "\n\n" + pickOne(teams) + "\n\n" + closing

	requirements = []string{
		"5+ years of professional experience in software development",
		"Experience building and maintaining production systems",
		"Excellent problem-solving and debugging skills",
		"Strong communication skills and ability to work in a team environment",
	}
	if len(techStack) >= 2 {
		requirements = append([]string{
			fmt.Sprintf("Strong proficiency in %s and %s", techStack[0], techStack[1]),
		}, requirements...)
	}
	requirements = append(requirements, pickUnique([]string{
		"Bachelor's degree in Computer Science or related field, or equivalent experience",
		"Experience with cloud platforms and microservices architecture",
		"Familiarity with CI/CD pipelines and DevOps practices",
		"Understanding of system design and scalability principles",
		"Experience with database design and optimization",
		"Knowledge of best practices for code quality and testing",
	}, randBetween(2, 4))...)

	responsibilities = []string{
		"Design, develop, and maintain scalable applications and services",
		"Collaborate with cross-functional teams to define and implement new features",
		"Write clean, maintainable, and well-tested code",
		"Participate in code reviews and contribute to technical discussions",
		"Troubleshoot and debug issues in production systems",
	}
	responsibilities = append(responsibilities, pickUnique([]string{
		"Mentor junior engineers and contribute to team knowledge sharing",
		"Work with product managers to refine requirements and technical specifications",
		"Optimize application performance and identify bottlenecks",
		"Contribute to architectural decisions and technical roadmap planning",
		"Stay current with industry trends and emerging technologies",
		"Participate in on-call rotation for production support",
	}, randBetween(2, 4))...)

	return description, requirements, responsibilities
}

func randBetween(min, max int) int {
	return min + rand.Intn(max-min+1)
}

func pickOne(options []string) string {
	return options[rand.Intn(len(options))]
}

func pickUnique(pool []string, n int) []string {
	shuffled := append([]string{}, pool...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for _, s := range shuffled {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == n {
			break
		}
	}
	return out
}
