package eco_test

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"

	"liyu1981.xyz/ecotrack-service/pkg/db"
	"liyu1981.xyz/ecotrack-service/pkg/eco"
	"liyu1981.xyz/ecotrack-service/pkg/eco/mocks"
	notifymocks "liyu1981.xyz/ecotrack-service/pkg/notify/mocks"
)

type ecoMocks struct {
	Notification *mocks.MockINotification
	Profile      *mocks.MockIProfile
	Publisher    *notifymocks.MockPublisher
}

// GetMockEcoWithMemorySqliteDialector builds an Eco on the shared in-memory
// database. The flags swap the real services for gomock ones.
func GetMockEcoWithMemorySqliteDialector(t *testing.T, useMockINotification, useMockIProfile, useMockPublisher bool) (
	*gomock.Controller,
	*eco.Eco,
	*ecoMocks,
) {
	ctrl := gomock.NewController(t)

	m := &ecoMocks{
		Notification: mocks.NewMockINotification(ctrl),
		Profile:      mocks.NewMockIProfile(ctrl),
		Publisher:    notifymocks.NewMockPublisher(ctrl),
	}

	dbInstance := db.GetInstance(db.UseMemorySqliteDialector())
	ecoInstance := eco.New(*dbInstance, nil, eco.DefaultThresholds())
	if useMockPublisher {
		ecoInstance.Notifier = m.Publisher
	}

	opts := eco.ServiceOpts{}
	if useMockINotification {
		opts.Notification = m.Notification
	}
	if useMockIProfile {
		opts.Profile = m.Profile
	}
	ecoInstance.WithServices(opts)

	return ctrl, ecoInstance, m
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func ptr[T any](v T) *T { return &v }
