package models

// ModuleVersionModel records the installed version of each module.
// An absent row or an empty version means the module was never installed.
type ModuleVersionModel struct {
	Name          string `gorm:"type:varchar(128);primaryKey"`
	LatestVersion string `gorm:"type:varchar(32);not null;default:''"`
}

// TableName returns the table name for GORM
func (ModuleVersionModel) TableName() string {
	return "module_versions"
}
