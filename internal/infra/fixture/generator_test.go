package fixture

import (
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	"civic/internal/domain/entity"
	domainerrors "civic/internal/domain/errors"
	"civic/internal/errors"
	mockRepo "civic/internal/mocks/repository"

	"github.com/nyaruka/phonenumbers"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestGenerator(seed uint64) *Generator {
	return NewGenerator(Options{
		Seed: seed,
		Now:  func() time.Time { return fixedNow },
	})
}

func TestGenerator_DeviceID(t *testing.T) {
	g := newTestGenerator(1)

	for range 50 {
		id := g.DeviceID()
		require.Len(t, id, entity.DeviceIDLength)
		for _, r := range id {
			assert.Contains(t, deviceIDAlphabet, string(r))
		}
	}
}

func TestGenerator_PhoneNumber_AlwaysValid(t *testing.T) {
	g := newTestGenerator(2)

	for range 200 {
		number, err := g.PhoneNumber()
		require.NoError(t, err)
		require.Len(t, number, 10)

		parsed, err := phonenumbers.Parse(number, "US")
		require.NoError(t, err)
		assert.True(t, phonenumbers.IsValidNumber(parsed), number)
	}
}

func TestGenerator_PhoneNumber_Exhausted(t *testing.T) {
	g := NewGenerator(Options{Seed: 3, PhoneMaxAttempts: 5})

	attempts := 0
	g.validPhone = func(string) bool {
		attempts++

		return false
	}

	_, err := g.PhoneNumber()
	require.ErrorIs(t, err, domainerrors.ErrPhoneNumberExhausted)
	assert.Equal(t, 5, attempts)
	assert.Contains(t, err.Error(), "after 5 attempts")
}

func TestGenerator_ListingWindow(t *testing.T) {
	g := newTestGenerator(4)

	for range 500 {
		w := g.ListingWindow()
		assert.False(t, w.Start.Before(fixedNow.Add(-listingStartSpread)), w.Start)
		assert.False(t, w.Start.After(fixedNow.Add(listingStartSpread)), w.Start)
		assert.False(t, w.End.Before(w.Start), "end %v before start %v", w.End, w.Start)
	}
}

func TestGenerator_ListingWindow_HorizonBeforeStart(t *testing.T) {
	g := NewGenerator(Options{
		Seed:           5,
		Now:            func() time.Time { return fixedNow },
		ListingHorizon: time.Minute,
	})

	for range 200 {
		w := g.ListingWindow()
		assert.False(t, w.End.Before(w.Start))
	}
}

func TestGenerator_EventWindow(t *testing.T) {
	g := newTestGenerator(6)

	for range 500 {
		w := g.EventWindow()
		assert.False(t, w.End.Before(fixedNow.Add(eventEndMin)), w.End)
		assert.False(t, w.End.After(fixedNow.Add(eventEndMax)), w.End)
		assert.True(t, w.EventStart.Before(w.End))

		lead := w.End.Sub(w.EventStart)
		assert.GreaterOrEqual(t, lead, time.Hour)
		assert.LessOrEqual(t, lead, 10*time.Hour)
	}
}

func TestGenerator_Between(t *testing.T) {
	g := newTestGenerator(14)
	loc := time.FixedZone("EST", -5*60*60)
	lo := fixedNow.In(loc)
	hi := lo.Add(72 * time.Hour)

	for range 200 {
		got := g.between(lo, hi)
		assert.False(t, got.Before(lo), got)
		assert.False(t, got.After(hi), got)
		assert.Zero(t, got.Nanosecond())
		assert.Equal(t, loc, got.Location())
	}

	assert.Equal(t, lo, g.between(lo, lo))
	assert.Equal(t, hi, g.between(hi, lo))
}

func TestGenerator_ActionCopy(t *testing.T) {
	g := newTestGenerator(7)

	categories := []entity.ActionCategory{
		entity.ActionCategoryCall,
		entity.ActionCategoryEmail,
		entity.ActionCategoryEvent,
	}

	for _, category := range categories {
		t.Run(string(category), func(t *testing.T) {
			for range 100 {
				stance := g.Stance()
				ac := g.ActionCopy(category, stance)

				assert.Contains(t, IssuesByStance[stance], ac.Issue)

				verb, found := strings.CutSuffix(ac.Title, stance.Connector()+ac.Issue)
				require.True(t, found, ac.Title)
				assert.Contains(t, VerbsFor(category), verb)

				assert.Contains(t, strings.ToLower(ac.Headline), strings.ToLower(ac.Issue))
				body := strings.TrimSuffix(ac.Headline, "!")
				assert.False(t, strings.HasSuffix(body, "!"))
				assert.NotEmpty(t, body)
			}
		})
	}
}

func TestGenerator_IssuesAreDisjoint(t *testing.T) {
	for _, issue := range IssuesByStance[entity.StanceSupport] {
		assert.NotContains(t, IssuesByStance[entity.StanceOppose], issue)
	}
}

func TestVerbsFor_FallsBack(t *testing.T) {
	assert.Equal(t, DefaultVerbs, VerbsFor(entity.ActionCategory("petition")))
}

func TestGenerator_Prose(t *testing.T) {
	g := newTestGenerator(8)

	for _, limit := range []int{1, 2, 5, 12, 24, 25, 40, 99, 100, 250, 1000} {
		for range 30 {
			text := g.Prose(limit)
			assert.NotEmpty(t, text, "limit %d", limit)
			assert.LessOrEqual(t, len(text), limit, "limit %d: %q", limit, text)
		}
	}
}

func TestGenerator_Prose_Paragraphs(t *testing.T) {
	g := newTestGenerator(9)

	text := g.Prose(1000)
	for _, p := range strings.Split(text, paragraphSeparator) {
		assert.NotEmpty(t, p)
		assert.True(t, strings.HasSuffix(p, "."), p)
		assert.Equal(t, strings.ToUpper(p[:1]), p[:1], p)
	}
}

func TestGenerator_Sentence(t *testing.T) {
	g := newTestGenerator(15)

	for range 50 {
		s := g.sentence()
		words := strings.Fields(s)
		assert.GreaterOrEqual(t, len(words), sentenceMinWords, s)
		assert.LessOrEqual(t, len(words), sentenceMaxWords, s)
		assert.True(t, strings.HasSuffix(s, "."), s)
		assert.NotContains(t, g.paragraph(), paragraphSeparator)
	}
}

func TestGenerator_CallScript(t *testing.T) {
	g := newTestGenerator(10)

	script := g.CallScript("Support Clean Water", 200)

	prefix := callScriptIntro + "support clean water." + paragraphSeparator
	require.True(t, strings.HasPrefix(script, prefix), script)
	assert.LessOrEqual(t, len(script)-len(prefix), 200)
}

func TestGenerator_Pickers(t *testing.T) {
	g := newTestGenerator(11)

	for range 50 {
		assert.Contains(t, OfficialTypes, g.OfficialType())
		assert.Contains(t, KudosTexts, g.KudosText())
		n := g.IntRange(40, 1000)
		assert.True(t, n >= 40 && n <= 1000, n)
	}
	assert.Equal(t, 3, g.IntRange(3, 3))
}

func TestGenerator_AddressFields(t *testing.T) {
	g := newTestGenerator(12)

	assert.Len(t, g.StateAbbr(), 2)
	assert.Len(t, g.Zip(), 5)

	location := g.Location()
	assert.NotContains(t, location, "\n")
	parts := strings.Split(location, ", ")
	require.Len(t, parts, 3, location)
	assert.Regexp(t, `^.+ \d{5}$`, parts[2])

	secondary := g.SecondaryAddress()
	assert.True(t, slices.ContainsFunc(secondaryAddressPrefixes, func(p string) bool {
		return strings.HasPrefix(secondary, p)
	}), secondary)
}

func TestGenerator_VenuePoint(t *testing.T) {
	g := newTestGenerator(13)

	for range 100 {
		lat, lon := g.VenuePoint()
		assert.True(t, continentalUS.Contains(orb.Point{lon, lat}), "%f,%f", lat, lon)
	}
}

func TestBoundsFromConfig(t *testing.T) {
	b := boundsFromConfig([]float64{10, 20, -5, 30})
	assert.Equal(t, orb.Point{-5, 20}, b.Min)
	assert.Equal(t, orb.Point{10, 30}, b.Max)

	assert.True(t, boundsFromConfig(nil).IsZero())
}

func TestGenerator_SameSeedSameValues(t *testing.T) {
	a := newTestGenerator(42)
	b := newTestGenerator(42)

	assert.Equal(t, a.DeviceID(), b.DeviceID())
	assert.Equal(t, a.Email(), b.Email())
	assert.Equal(t, a.ActionCopy(entity.ActionCategoryCall, entity.StanceSupport),
		b.ActionCopy(entity.ActionCategoryCall, entity.StanceSupport))
	assert.Equal(t, a.ListingWindow(), b.ListingWindow())
	assert.Equal(t, a.Prose(300), b.Prose(300))
}

func TestGenerator_PickUser(t *testing.T) {
	g := newTestGenerator(14)
	ctx := context.Background()

	users := []*entity.User{{UserName: "a"}, {UserName: "b"}, {UserName: "c"}}
	pool := mockRepo.NewMockUserPool(t)
	pool.EXPECT().Count(ctx).Return(int64(len(users)), nil)
	pool.EXPECT().
		FindAtOffset(ctx, mock.AnythingOfType("int64")).
		RunAndReturn(func(_ context.Context, offset int64) (*entity.User, error) {
			return users[offset], nil
		})

	for range 20 {
		user, err := g.PickUser(ctx, pool)
		require.NoError(t, err)
		assert.Contains(t, users, user)
	}
}

func TestGenerator_PickUser_EmptyPool(t *testing.T) {
	g := newTestGenerator(15)
	ctx := context.Background()

	pool := mockRepo.NewMockUserPool(t)
	pool.EXPECT().Count(ctx).Return(int64(0), nil)

	_, err := g.PickUser(ctx, pool)
	require.ErrorIs(t, err, domainerrors.ErrNoUsersAvailable)
}

func TestGenerator_PickUser_CountFails(t *testing.T) {
	g := newTestGenerator(16)
	ctx := context.Background()

	pool := mockRepo.NewMockUserPool(t)
	pool.EXPECT().Count(ctx).Return(int64(0), errors.New("connection refused"))

	_, err := g.PickUser(ctx, pool)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count users")
}
