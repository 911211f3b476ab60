package eco

import (
	"context"
	"errors"
	"math"
	"time"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/db"
	"liyu1981.xyz/ecotrack-service/pkg/footprint"
	"liyu1981.xyz/ecotrack-service/pkg/models"
	"liyu1981.xyz/ecotrack-service/pkg/notify"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrConflict     = errors.New("record already exists")
	ErrInvalidInput = errors.New("invalid input")
)

type IActivity interface {
	CreateActivity(ctx context.Context, userID string, input *models.Activity) (*models.Activity, error)
	ListActivities(ctx context.Context, userID string, filter ActivityFilter) (*Page[models.Activity], error)
	UpdateActivity(ctx context.Context, userID string, id uint, patch *ActivityPatch) (*models.Activity, error)
	DeleteActivity(ctx context.Context, userID string, id uint) error
	GetEmissionSummary(ctx context.Context, userID string, period footprint.Period) (*footprint.EmissionSummary, error)
	GetReductionTips(ctx context.Context, userID string, activityType string) ([]footprint.Tip, error)
}

type IRenewable interface {
	CreateRenewableEnergy(ctx context.Context, userID string, input *models.RenewableEnergy) (*models.RenewableEnergy, error)
	ListRenewableEnergy(ctx context.Context, userID string, filter RenewableFilter) (*Page[models.RenewableEnergy], error)
	DeleteRenewableEnergy(ctx context.Context, userID string, id uint) error
	GetRenewableSummary(ctx context.Context, userID string, period footprint.Period) (*footprint.RenewableSummary, error)
}

type IPlastic interface {
	CreatePlasticUsage(ctx context.Context, userID string, input *models.PlasticUsage) (*models.PlasticUsage, float64, error)
	ListPlasticUsage(ctx context.Context, userID string, filter PlasticFilter) (*Page[models.PlasticUsage], error)
	DeletePlasticUsage(ctx context.Context, userID string, id uint) error
	GetPlasticSummary(ctx context.Context, userID string, period footprint.Period) (*footprint.PlasticSummary, error)
}

type INotification interface {
	Notify(ctx context.Context, n *models.Notification) error
	CheckActivity(ctx context.Context, activity *models.Activity) error
	CheckPlasticUsage(ctx context.Context, userID string, monthlyTotal float64) error
	CheckRenewableEnergy(ctx context.Context, record *models.RenewableEnergy) error
	ListNotifications(ctx context.Context, userID string, filter NotificationFilter) (*NotificationPage, error)
	MarkRead(ctx context.Context, userID string, id uint) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	DeleteNotification(ctx context.Context, userID string, id uint) error
	DeleteReadNotifications(ctx context.Context, userID string) (int64, error)
}

type IWaste interface {
	ClassifyWaste(ctx context.Context, description string) (*footprint.Classification, error)
	GetWasteCategories(ctx context.Context) (*WasteCategories, error)
	AddWasteType(ctx context.Context, input *models.WasteType) (*models.WasteType, error)
	SeedWasteTypes(ctx context.Context) (int, error)
}

type IProfile interface {
	GetGoals(ctx context.Context, userID string) (*models.Profile, error)
	UpsertGoals(ctx context.Context, userID string, patch *GoalsPatch) (*models.Profile, error)
}

type IStats interface {
	GetGlobalStats(ctx context.Context) (*GlobalStats, error)
}

// Thresholds are the notification trigger levels (strictly greater than) and
// the goals assumed for users without a stored profile.
type Thresholds struct {
	HighEmission         float64
	PlasticMonthly       float64
	RenewableAchievement float64
	DefaultCarbonGoal    float64
	DefaultPlasticGoal   float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		HighEmission:         50,
		PlasticMonthly:       50,
		RenewableAchievement: 100,
		DefaultCarbonGoal:    1000,
		DefaultPlasticGoal:   20,
	}
}

func ThresholdsFromConfig(c common.ThresholdConfig) Thresholds {
	return Thresholds{
		HighEmission:         c.HighEmission,
		PlasticMonthly:       c.PlasticMonthly,
		RenewableAchievement: c.RenewableAchievement,
		DefaultCarbonGoal:    c.DefaultCarbonGoal,
		DefaultPlasticGoal:   c.DefaultPlasticGoal,
	}
}

type Eco struct {
	Db         db.DB
	Notifier   notify.Publisher
	Thresholds Thresholds
	Clock      common.Clock

	Activity     IActivity
	Renewable    IRenewable
	Plastic      IPlastic
	Notification INotification
	Waste        IWaste
	Profile      IProfile
	Stats        IStats
}

type ServiceOpts struct {
	Activity     IActivity
	Renewable    IRenewable
	Plastic      IPlastic
	Notification INotification
	Waste        IWaste
	Profile      IProfile
	Stats        IStats
}

// New wires the default service implementations.
func New(conn db.DB, notifier notify.Publisher, thresholds Thresholds) *Eco {
	e := &Eco{Db: conn, Notifier: notifier, Thresholds: thresholds, Clock: common.SystemClock}
	return e.WithServices(ServiceOpts{
		Activity:     e.GetIActivity(),
		Renewable:    e.GetIRenewable(),
		Plastic:      e.GetIPlastic(),
		Notification: e.GetINotification(),
		Waste:        e.GetIWaste(),
		Profile:      e.GetIProfile(),
		Stats:        e.GetIStats(),
	})
}

func (e *Eco) WithServices(opts ServiceOpts) *Eco {
	if opts.Activity != nil {
		e.Activity = opts.Activity
	}
	if opts.Renewable != nil {
		e.Renewable = opts.Renewable
	}
	if opts.Plastic != nil {
		e.Plastic = opts.Plastic
	}
	if opts.Notification != nil {
		e.Notification = opts.Notification
	}
	if opts.Waste != nil {
		e.Waste = opts.Waste
	}
	if opts.Profile != nil {
		e.Profile = opts.Profile
	}
	if opts.Stats != nil {
		e.Stats = opts.Stats
	}
	return e
}

func (e *Eco) now() time.Time {
	if e.Clock == nil {
		return common.SystemClock()
	}
	return e.Clock().UTC()
}

// ListFilter bounds a listing by date (inclusive) and pages it.
type ListFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

func (p *Page[T]) Pages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.Limit)))
}
