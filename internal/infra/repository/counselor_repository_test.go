package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/testutil"
)

func TestStaticCatalog(t *testing.T) {
	ctx := context.Background()
	cat := NewStaticCatalog(CounselorFixtures())

	list, err := cat.ListCounselors(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "counselor-001", list[0].ID)
	assert.Equal(t, "counselor-004", list[3].ID)

	c, err := cat.GetCounselor(ctx, "counselor-003")
	require.NoError(t, err)
	assert.Equal(t, "Grace Adeyemi", c.Name)

	_, err = cat.GetCounselor(ctx, "counselor-999")
	assert.True(t, httperr.IsBusiness(err, domain.ErrCodeCounselorNotFound))
}

func TestStaticCatalog_CallersCannotMutateCatalog(t *testing.T) {
	ctx := context.Background()
	cat := NewStaticCatalog(CounselorFixtures())

	list, _ := cat.ListCounselors(ctx)
	list[0] = domain.Counselor{ID: "mutated"}

	again, _ := cat.ListCounselors(ctx)
	assert.Equal(t, "counselor-001", again[0].ID)
}

func TestCounselorGorm_SeedAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	fixtures := CounselorFixtures()

	n, err := SeedCounselors(ctx, db, fixtures)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = SeedCounselors(ctx, db, fixtures)
	require.NoError(t, err)
	assert.Zero(t, n, "seeding twice must not duplicate rows")

	repo := NewCounselorGormRepository(db)

	list, err := repo.ListCounselors(ctx)
	require.NoError(t, err)
	assert.Equal(t, fixtures, list)
}

func TestCounselorGorm_GetCounselor(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	_, err := SeedCounselors(ctx, db, CounselorFixtures())
	require.NoError(t, err)

	repo := NewCounselorGormRepository(db)

	c, err := repo.GetCounselor(ctx, "counselor-004")
	require.NoError(t, err)
	assert.Equal(t, "CAT", c.Availability.Timezone)
	assert.Equal(t, domain.WorkingHours{Start: 8, End: 17}, c.Availability.WorkingHours)
	assert.Equal(t, int64(55000), domain.PriceFor(*c, domain.ConsultationPackage))

	_, err = repo.GetCounselor(ctx, "nobody")
	assert.True(t, httperr.IsBusiness(err, domain.ErrCodeCounselorNotFound))
}

func TestCounselorGorm_EmptyTable(t *testing.T) {
	list, err := NewCounselorGormRepository(testutil.NewDB(t)).ListCounselors(context.Background())

	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestValidateCounselors(t *testing.T) {
	require.NoError(t, ValidateCounselors(CounselorFixtures()))

	noZone := CounselorFixtures()
	noZone[0].Availability.Timezone = ""
	assert.NoError(t, ValidateCounselors(noZone), "empty timezone means the default")

	badZone := CounselorFixtures()
	badZone[1].Availability.Timezone = "Mars/Olympus"
	assert.ErrorContains(t, ValidateCounselors(badZone), `unknown timezone "Mars/Olympus"`)

	dup := CounselorFixtures()
	dup[2].ID = dup[0].ID
	assert.ErrorContains(t, ValidateCounselors(dup), "listed twice")

	anonymous := CounselorFixtures()
	anonymous[3].ID = ""
	assert.Error(t, ValidateCounselors(anonymous))
}

func TestSeedCounselors_RejectsUnknownTimezone(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	fixtures := CounselorFixtures()
	fixtures[0].Availability.Timezone = "Nowhere/Special"

	n, err := SeedCounselors(ctx, db, fixtures)

	require.Error(t, err)
	assert.Zero(t, n)

	list, err := NewCounselorGormRepository(db).ListCounselors(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "nothing is written when validation fails")
}
