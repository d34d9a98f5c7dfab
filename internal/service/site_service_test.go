package service

import (
	"context"
	"runtime"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/drinkorder/internal/models"
	"github.com/mmynk/drinkorder/pkg/api"
)

func TestHealth(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.site.Health(context.Background(), connect.NewRequest(&api.HealthRequest{}))
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}

	if resp.Msg.Status != "healthy" {
		t.Errorf("status: expected 'healthy', got '%s'", resp.Msg.Status)
	}
	if resp.Msg.Environment != "test" {
		t.Errorf("environment: expected 'test', got '%s'", resp.Msg.Environment)
	}
	if resp.Msg.GoVersion != runtime.Version() {
		t.Errorf("goVersion: expected %s, got %s", runtime.Version(), resp.Msg.GoVersion)
	}
	if _, err := time.ParseInLocation(serverTimeLayout, resp.Msg.ServerTime, time.Local); err != nil {
		t.Errorf("serverTime %q not in %s format: %v", resp.Msg.ServerTime, serverTimeLayout, err)
	}
}

func TestSiteSettings(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	resp, err := env.site.GetSettings(ctx, connect.NewRequest(&api.GetSettingsRequest{}))
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if resp.Msg.Settings.SiteName != models.DefaultSiteSettings().SiteName {
		t.Errorf("siteName: expected default, got '%s'", resp.Msg.Settings.SiteName)
	}

	_, err = env.site.UpdateSettings(ctx, connect.NewRequest(&api.UpdateSettingsRequest{
		Settings: &api.SiteSettings{SiteName: " "},
	}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = env.site.UpdateSettings(ctx, connect.NewRequest(&api.UpdateSettingsRequest{
		Settings: &api.SiteSettings{SiteName: "午茶團", Description: "每週五下午"},
	}))
	if err != nil {
		t.Fatalf("UpdateSettings failed: %v", err)
	}

	resp, err = env.site.GetSettings(ctx, connect.NewRequest(&api.GetSettingsRequest{}))
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if resp.Msg.Settings.SiteName != "午茶團" || resp.Msg.Settings.Description != "每週五下午" {
		t.Errorf("settings not saved: %+v", resp.Msg.Settings)
	}
}
