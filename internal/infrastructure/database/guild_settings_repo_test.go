package database

import (
	"context"
	"os"
	"slices"
	"testing"

	"fightnight/internal/domain"
	"fightnight/internal/domain/entities"
)

// newTestRepository connects to TEST_DATABASE_URL; the test is skipped when
// no database is available.
func newTestRepository(t *testing.T) *GuildSettingsRepository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if err := RunMigrations(dsn, "../../../migrations", false); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	pool, err := NewPool(context.Background(), dsn)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(pool.Close)
	if _, err := pool.Exec(context.Background(), `DELETE FROM guild_settings WHERE guild_id LIKE 'test-%'`); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	return NewGuildSettingsRepository(pool)
}

func TestGuildSettingsRepository_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if _, found, err := repo.Get(ctx, "test-1"); err != nil || found {
		t.Fatalf("Get on empty table: found=%v err=%v", found, err)
	}

	want := entities.GuildSettings{
		Org:                  domain.OrgUFC,
		ChannelID:            "123",
		DeliveryMode:         domain.DeliveryAnnouncement,
		NotificationHour:     18,
		Timezone:             "America/New_York",
		NotificationsEnabled: true,
		LastPosted:           map[domain.OrgID]string{domain.OrgUFC: "2024-05-10"},
	}
	if err := repo.Put(ctx, "test-1", want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	want.NotificationHour = 19
	if err := repo.Put(ctx, "test-1", want); err != nil {
		t.Fatalf("Put (upsert): %v", err)
	}

	got, found, err := repo.Get(ctx, "test-1")
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if got.NotificationHour != 19 || got.Org != domain.OrgUFC || got.LastPosted[domain.OrgUFC] != "2024-05-10" {
		t.Errorf("got %+v", got)
	}

	ids, err := repo.ListGuildIDs(ctx)
	if err != nil {
		t.Fatalf("ListGuildIDs: %v", err)
	}
	if !slices.Contains(ids, "test-1") {
		t.Errorf("ListGuildIDs = %v, want test-1 included", ids)
	}

	if err := repo.Delete(ctx, "test-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := repo.Get(ctx, "test-1"); found {
		t.Error("settings still present after Delete")
	}
}

func TestSettingsJSON_OlderRowsDecode(t *testing.T) {
	s, err := settingsFromJSON([]byte(`{"org":"ufc","notificationHour":15}`))
	if err != nil {
		t.Fatalf("settingsFromJSON: %v", err)
	}
	if s.Org != domain.OrgUFC || s.DeliveryMode != "" || s.LastPosted != nil {
		t.Errorf("got %+v", s)
	}
	if _, err := settingsFromJSON([]byte(`{not json`)); err == nil {
		t.Error("expected decode error")
	}
}
