package migration

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/erp/usability/internal/infrastructure/persistence/models"
	"github.com/erp/usability/internal/infrastructure/telemetry"
	goversion "github.com/hashicorp/go-version"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Stage tells when an upgrade step runs relative to the schema update
type Stage string

const (
	StagePre  Stage = "pre"
	StagePost Stage = "post"
)

// StepFunc runs one upgrade step inside the upgrade transaction.
// installedVersion is the module version found before the upgrade; empty on a fresh install.
// It returns the number of rows the step changed.
type StepFunc func(ctx context.Context, tx *gorm.DB, installedVersion string) (int64, error)

// UpgradeStep is a data fix that must run once when a module is upgraded past Version
type UpgradeStep struct {
	Module  string
	Version string
	Stage   Stage
	Run     StepFunc
}

var (
	// ErrInvalidStep is returned when registering an incomplete step
	ErrInvalidStep = errors.New("invalid upgrade step")
	// ErrUnknownModule is returned when upgrading a module with no registered step
	ErrUnknownModule = errors.New("no upgrade steps registered for module")
)

// StepResult reports one executed step
type StepResult struct {
	Version string
	Stage   Stage
	Rows    int64
}

// UpgradeResult reports one module upgrade
type UpgradeResult struct {
	Module           string
	InstalledVersion string
	Steps            []StepResult
	// RecordedVersion is the version written to module_versions; only the
	// post stage records one
	RecordedVersion string
	Skipped         bool
}

// Upgrader holds the registered upgrade steps and runs them per module
type Upgrader struct {
	db     *gorm.DB
	logger *zap.Logger
	steps  map[string][]UpgradeStep
}

// NewUpgrader creates an Upgrader with no registered steps
func NewUpgrader(db *gorm.DB, logger *zap.Logger) *Upgrader {
	return &Upgrader{
		db:     db,
		logger: logger,
		steps:  make(map[string][]UpgradeStep),
	}
}

// NewDefaultUpgrader creates an Upgrader with every built-in step registered
func NewDefaultUpgrader(db *gorm.DB, logger *zap.Logger) (*Upgrader, error) {
	u := NewUpgrader(db, logger)
	for _, step := range ProductUsabilitySteps() {
		if err := u.Register(step); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// Register adds a step. Steps of a module are kept sorted by version.
func (u *Upgrader) Register(step UpgradeStep) error {
	if step.Module == "" || step.Run == nil {
		return fmt.Errorf("%w: module and run function are required", ErrInvalidStep)
	}
	if step.Stage != StagePre && step.Stage != StagePost {
		return fmt.Errorf("%w: unknown stage %q", ErrInvalidStep, step.Stage)
	}
	if _, err := goversion.NewVersion(step.Version); err != nil {
		return fmt.Errorf("%w: bad version %q: %v", ErrInvalidStep, step.Version, err)
	}

	steps := append(u.steps[step.Module], step)
	sort.SliceStable(steps, func(i, j int) bool {
		return compareVersions(steps[i].Version, steps[j].Version) < 0
	})
	u.steps[step.Module] = steps
	return nil
}

// Modules lists the modules that have registered steps
func (u *Upgrader) Modules() []string {
	names := make([]string, 0, len(u.steps))
	for name := range u.steps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Steps returns the steps of a module for one stage, oldest version first
func (u *Upgrader) Steps(module string, stage Stage) []UpgradeStep {
	var steps []UpgradeStep
	for _, step := range u.steps[module] {
		if step.Stage == stage {
			steps = append(steps, step)
		}
	}
	return steps
}

// Upgrade runs the module's steps for the stage against the installed version
// recorded in module_versions.
func (u *Upgrader) Upgrade(ctx context.Context, module string, stage Stage) (*UpgradeResult, error) {
	installed, err := InstalledVersion(ctx, u.db, module)
	if err != nil {
		return nil, err
	}
	return u.UpgradeFrom(ctx, module, stage, installed)
}

// UpgradeFrom runs, in one transaction, every step of the module for the stage
// whose version is newer than installedVersion. An empty installedVersion is
// a fresh install and runs nothing.
//
// The pre stage never records a version, so the post stage of the same
// upgrade still sees installedVersion. The post stage records the newest
// version of any stage that was pending.
func (u *Upgrader) UpgradeFrom(ctx context.Context, module string, stage Stage, installedVersion string) (*UpgradeResult, error) {
	if _, ok := u.steps[module]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModule, module)
	}

	result := &UpgradeResult{Module: module, InstalledVersion: installedVersion}
	log := u.logger.With(
		zap.String("module", module),
		zap.String("stage", string(stage)),
		zap.String("installed_version", installedVersion),
	)

	if installedVersion == "" {
		log.Info("Module not installed, skipping upgrade steps")
		result.Skipped = true
		return result, nil
	}

	pending := u.pendingSteps(module, installedVersion, func(s UpgradeStep) bool { return s.Stage == stage })
	var target string
	if stage == StagePost {
		if all := u.pendingSteps(module, installedVersion, nil); len(all) > 0 {
			target = all[len(all)-1].Version
		}
	}
	if len(pending) == 0 && target == "" {
		log.Info("No pending upgrade steps")
		result.Skipped = true
		return result, nil
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, step := range pending {
			rows, err := u.runStep(ctx, tx, step, installedVersion)
			if err != nil {
				return err
			}
			log.Info("Upgrade step completed",
				zap.String("version", step.Version),
				zap.Int64("rows", rows),
			)
			result.Steps = append(result.Steps, StepResult{Version: step.Version, Stage: step.Stage, Rows: rows})
		}
		if target == "" {
			return nil
		}
		return recordVersion(ctx, tx, module, target)
	})
	if err != nil {
		log.Error("Upgrade failed, rolled back", zap.Error(err))
		return nil, err
	}
	result.RecordedVersion = target
	result.Skipped = len(pending) == 0
	return result, nil
}

// pendingSteps returns the module's steps newer than installedVersion that
// match keep, oldest version first. A nil keep matches every stage.
func (u *Upgrader) pendingSteps(module, installedVersion string, keep func(UpgradeStep) bool) []UpgradeStep {
	var pending []UpgradeStep
	for _, step := range u.steps[module] {
		if keep != nil && !keep(step) {
			continue
		}
		if compareVersions(step.Version, installedVersion) > 0 {
			pending = append(pending, step)
		}
	}
	return pending
}

func (u *Upgrader) runStep(ctx context.Context, tx *gorm.DB, step UpgradeStep, installedVersion string) (int64, error) {
	ctx, span := telemetry.StartUpgradeSpan(ctx, step.Module, step.Version, string(step.Stage))
	defer span.End()

	rows, err := step.Run(ctx, tx.WithContext(ctx), installedVersion)
	if err != nil {
		telemetry.RecordError(span, err)
		return 0, fmt.Errorf("upgrade step %s %s/%s: %w", step.Module, step.Version, step.Stage, err)
	}
	telemetry.SetCount(span, "upgrade.rows", rows)
	return rows, nil
}

// InstalledVersion returns the recorded version of a module, or "" when the
// module (or the module_versions table) is absent.
func InstalledVersion(ctx context.Context, db *gorm.DB, module string) (string, error) {
	exists, err := TableExists(ctx, db, models.ModuleVersionModel{}.TableName())
	if err != nil {
		return "", err
	}
	if !exists {
		return "", nil
	}

	var row models.ModuleVersionModel
	err = db.WithContext(ctx).Where("name = ?", module).Limit(1).Find(&row).Error
	if err != nil {
		return "", fmt.Errorf("failed to read installed version of %s: %w", module, err)
	}
	return row.LatestVersion, nil
}

func recordVersion(ctx context.Context, tx *gorm.DB, module, version string) error {
	exists, err := TableExists(ctx, tx, models.ModuleVersionModel{}.TableName())
	if err != nil || !exists {
		return err
	}

	row := models.ModuleVersionModel{Name: module, LatestVersion: version}
	err = tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"latest_version"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to record version %s of %s: %w", version, module, err)
	}
	return nil
}

// compareVersions compares dotted module versions such as 13.0.1.0.0.
// Unparseable versions sort before every valid one.
func compareVersions(a, b string) int {
	va, errA := goversion.NewVersion(a)
	vb, errB := goversion.NewVersion(b)
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	return va.Compare(vb)
}
