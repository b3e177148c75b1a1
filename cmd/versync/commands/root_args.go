package commands

type RootArgs struct {
	logLevel   *string
	logFormat  *string
	dir        *string
	configFile *string
	manifest   *string
	gradle     *string
	color      *string
	findRoot   *bool
	dryRun     *bool
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:   new(string),
		logFormat:  new(string),
		dir:        new(string),
		configFile: new(string),
		manifest:   new(string),
		gradle:     new(string),
		color:      new(string),
		findRoot:   new(bool),
		dryRun:     new(bool),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetDir() string {
	return *a.dir
}

func (a *RootArgs) GetConfigFile() string {
	return *a.configFile
}

func (a *RootArgs) GetManifest() string {
	return *a.manifest
}

func (a *RootArgs) GetGradle() string {
	return *a.gradle
}

func (a *RootArgs) GetColor() string {
	return *a.color
}

func (a *RootArgs) GetFindRoot() bool {
	return *a.findRoot
}

func (a *RootArgs) GetDryRun() bool {
	return *a.dryRun
}
