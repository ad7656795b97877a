// Package fixture generates randomized field values for development fixtures.
// Every value is drawn from the generator's own seeded source, so a seed reproduces a run.
package fixture

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"civic/config"
	"civic/internal/domain/entity"
	domainerrors "civic/internal/domain/errors"
	"civic/internal/domain/repository"
	"civic/internal/domain/service"
	"civic/internal/errors"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	defaultPhoneMaxAttempts = 1000
	defaultListingHorizon   = 120 * 24 * time.Hour

	// pcgStream decorrelates the second PCG word from the seed
	pcgStream = 0x9e3779b97f4a7c15
)

// Options configures a Generator.
type Options struct {
	// Seed of the random source. Zero picks a time based seed.
	Seed uint64

	// Now is the reference clock for date windows. Defaults to time.Now.
	Now func() time.Time

	PhoneMaxAttempts int
	ListingHorizon   time.Duration

	// VenueBounds limits event coordinates. Defaults to the continental US.
	VenueBounds orb.Bound
}

// Generator implements service.FixtureGenerator on top of gofakeit.
// It is not safe for concurrent use.
type Generator struct {
	seed   uint64
	rng    *rand.Rand
	faker  *gofakeit.Faker
	now    func() time.Time
	titler cases.Caser

	phoneMaxAttempts int
	listingHorizon   time.Duration
	venueBounds      orb.Bound

	// validPhone is swapped in tests to exercise the attempt budget
	validPhone func(candidate string) bool
}

// Params defines the parameters required for the generator
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the generator from the seed section of the config.
func New(params Params) service.FixtureGenerator {
	cfg := params.Config.Seed

	g := NewGenerator(Options{
		Seed:             cfg.RandomSeed,
		PhoneMaxAttempts: cfg.PhoneMaxAttempts,
		ListingHorizon:   cfg.ListingHorizon,
		VenueBounds:      boundsFromConfig(cfg.VenueBounds),
	})

	params.Logger.Info("Fixture generator ready",
		slog.Uint64("seed", g.Seed()),
		slog.Int("phoneMaxAttempts", g.phoneMaxAttempts),
		slog.Duration("listingHorizon", g.listingHorizon),
	)

	return g
}

// NewGenerator creates a generator from explicit options.
func NewGenerator(opts Options) *Generator {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	src := rand.NewPCG(seed, seed^pcgStream)

	g := &Generator{
		seed:             seed,
		rng:              rand.New(src),
		faker:            gofakeit.NewFaker(src, false),
		now:              opts.Now,
		titler:           cases.Title(language.English),
		phoneMaxAttempts: opts.PhoneMaxAttempts,
		listingHorizon:   opts.ListingHorizon,
		venueBounds:      opts.VenueBounds,
		validPhone:       isValidNANP,
	}

	if g.now == nil {
		g.now = time.Now
	}
	if g.phoneMaxAttempts <= 0 {
		g.phoneMaxAttempts = defaultPhoneMaxAttempts
	}
	if g.listingHorizon <= 0 {
		g.listingHorizon = defaultListingHorizon
	}
	if g.venueBounds.IsZero() {
		g.venueBounds = continentalUS
	}

	return g
}

// Seed returns the seed the generator was built with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Stance flips a fair coin.
func (g *Generator) Stance() entity.Stance {
	return entity.Stance(g.rng.IntN(2) == 1)
}

// IntRange returns a uniform integer in [lo, hi].
func (g *Generator) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) OfficialType() string {
	return g.pick(OfficialTypes)
}

func (g *Generator) KudosText() string {
	return g.pick(KudosTexts)
}

// PickUser draws a uniform offset into the pool and loads the user stored there.
func (g *Generator) PickUser(ctx context.Context, pool repository.UserPool) (*entity.User, error) {
	count, err := pool.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	if count <= 0 {
		return nil, domainerrors.ErrNoUsersAvailable
	}

	user, err := pool.FindAtOffset(ctx, g.rng.Int64N(count))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load random user")
	}

	return user, nil
}

// DeviceID returns a 40 character token of upper case letters, digits and hyphens.
func (g *Generator) DeviceID() string {
	buf := make([]byte, entity.DeviceIDLength)
	for i := range buf {
		buf[i] = deviceIDAlphabet[g.rng.IntN(len(deviceIDAlphabet))]
	}

	return string(buf)
}

func (g *Generator) UserName() string  { return g.faker.Username() }
func (g *Generator) Email() string     { return g.faker.Email() }
func (g *Generator) FirstName() string { return g.faker.FirstName() }
func (g *Generator) LastName() string  { return g.faker.LastName() }
func (g *Generator) FullName() string  { return g.faker.Name() }
func (g *Generator) City() string      { return g.faker.City() }
func (g *Generator) StateAbbr() string { return g.faker.StateAbr() }
func (g *Generator) Zip() string       { return g.faker.Zip() }

func (g *Generator) StreetAddress() string {
	return g.faker.Street()
}

// SecondaryAddress returns an apartment or suite line such as "Apt. 214".
func (g *Generator) SecondaryAddress() string {
	return g.pick(secondaryAddressPrefixes) + strconv.Itoa(g.IntRange(100, 999))
}

// Location returns a postal address on one line, "street, city, state zip".
func (g *Generator) Location() string {
	return g.faker.Address().Address
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.IntN(len(values))]
}
