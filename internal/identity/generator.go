package identity

import (
	"fmt"
	"strconv"
	"time"

	"github.com/zarlcorp/zcampus/internal/fold"
	"github.com/zarlcorp/zcampus/internal/random"
	"github.com/zarlcorp/zcampus/internal/university"
)

const (
	minAge = 18
	maxAge = 24

	// suffixChance is the probability an email gets a numeric suffix.
	suffixChance = 0.3

	// emptyNamePart stands in for names that fold to nothing.
	emptyNamePart = "student"
)

// Generator produces random student data. It is safe for concurrent use.
type Generator struct {
	rng      random.Source
	rules    []university.Rule
	resolver *university.Resolver
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. The default is crypto-seeded.
func WithSource(src random.Source) Option {
	return func(g *Generator) { g.rng = src }
}

// WithClock sets the clock used for birth dates.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRules replaces the domain resolver's special cases.
func WithRules(rules ...university.Rule) Option {
	return func(g *Generator) { g.rules = rules }
}

// New creates a generator.
func New(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, o := range opts {
		o(g)
	}

	if g.rng == nil {
		g.rng = random.NewCrypto()
	}
	g.rng = random.Locked(g.rng)
	g.resolver = university.NewResolver(g.rng, g.rules...)

	return g
}

// Name picks a gender, a first name of that gender and a surname.
func (g *Generator) Name() Identity {
	gender := random.Pick(g.rng, []Gender{Male, Female})

	pool := maleFirstNames
	if gender == Female {
		pool = femaleFirstNames
	}

	first := random.Pick(g.rng, pool)
	last := random.Pick(g.rng, lastNames)

	return Identity{
		FirstName: first,
		LastName:  last,
		FullName:  first + " " + last,
		Gender:    gender,
	}
}

// BirthDate returns a YYYY-MM-DD date for someone aged 18 to 24 at now.
// February always has 28 days.
func (g *Generator) BirthDate(now time.Time) string {
	year := now.Year() - random.Between(g.rng, minAge, maxAge)
	month := random.Between(g.rng, 1, 12)
	day := random.Between(g.rng, 1, daysIn(month))
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// daysIn is the month length table, without leap years.
func daysIn(month int) int {
	switch month {
	case 2:
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

// Domain returns the email domain for a university name. An empty name
// gets one of the generic domains.
func (g *Generator) Domain(universityName string) string {
	if universityName == "" {
		return random.Pick(g.rng, genericDomains)
	}
	return g.resolver.Resolve(universityName)
}

// Email builds a student address from one of six username patterns:
// first.last, firstlast, flast, firstl, first.l and f.last. Three in ten
// addresses get a 1-99 suffix.
func (g *Generator) Email(first, last, universityName string) string {
	domain := g.Domain(universityName)

	f := fold.Token(first)
	if f == "" {
		f = emptyNamePart
	}
	l := fold.Token(last)
	if l == "" {
		l = emptyNamePart
	}

	patterns := []string{
		f + "." + l,
		f + l,
		f[:1] + l,
		f + l[:1],
		f + "." + l[:1],
		f[:1] + "." + l,
	}

	username := random.Pick(g.rng, patterns)
	if g.rng.Float64() < suffixChance {
		username += strconv.Itoa(random.Between(g.rng, 1, 99))
	}

	return username + "@" + domain
}

// Student generates a complete student for the given university. An empty
// name uses the generic domains and the "Generic University" label.
func (g *Generator) Student(universityName string) Student {
	id := g.Name()

	label := universityName
	if label == "" {
		label = genericUniversity
	}

	return Student{
		Identity:   id,
		BirthDate:  g.BirthDate(g.now()),
		Email:      g.Email(id.FirstName, id.LastName, universityName),
		University: label,
	}
}

// Sample generates a student at a random catalog university, falling back
// to the generic path when the catalog is absent or empty.
func (g *Generator) Sample(c *university.Catalog) Student {
	if u, ok := c.Pick(g.rng); ok {
		return g.Student(u.Name)
	}
	return g.Student("")
}

// Roster generates n samples.
func (g *Generator) Roster(c *university.Catalog, n int) []Student {
	out := make([]Student, 0, max(n, 0))
	for range n {
		out = append(out, g.Sample(c))
	}
	return out
}
