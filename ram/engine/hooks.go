package engine

import "github.com/sarchlab/ramsim/sim/hooking"

// The positions at which the engine invokes its hooks.
var (
	HookPosBootstrap       = &hooking.HookPos{Name: "Bootstrap"}
	HookPosInitialized     = &hooking.HookPos{Name: "Initialized"}
	HookPosScanDone        = &hooking.HookPos{Name: "ScanDone"}
	HookPosModuleAllocated = &hooking.HookPos{Name: "ModuleAllocated"}
	HookPosStateChange     = &hooking.HookPos{Name: "StateChange"}
	HookPosModuleInstalled = &hooking.HookPos{Name: "ModuleInstalled"}
	HookPosModuleRemoved   = &hooking.HookPos{Name: "ModuleRemoved"}
	HookPosModuleDiagnosed = &hooking.HookPos{Name: "ModuleDiagnosed"}
	HookPosBusSync         = &hooking.HookPos{Name: "BusSync"}
	HookPosSelfTestDone    = &hooking.HookPos{Name: "SelfTestDone"}
	HookPosRegionDumped    = &hooking.HookPos{Name: "RegionDumped"}
	HookPosMaintenanceTick = &hooking.HookPos{Name: "MaintenanceTick"}
	HookPosShutdown        = &hooking.HookPos{Name: "Shutdown"}
)

// Task kinds reported through hooking.TaskStart.
const (
	TaskKindScan        = "scan"
	TaskKindInstall     = "install"
	TaskKindUninstall   = "uninstall"
	TaskKindDiagnostics = "diagnostics"
	TaskKindSelfTest    = "self_test"
	TaskKindRegionDump  = "region_dump"
)

// EngineInfo is the item of the bootstrap hook.
type EngineInfo struct {
	Name    string
	Version string
}

// StateChange is the item of the state change hook. Aborted is set when a
// pass was interrupted and the engine went back to the state it started
// from.
type StateChange struct {
	From    State
	To      State
	Aborted bool
}

// SelfTestResult is the item of the self-test hook.
type SelfTestResult struct {
	Passed bool
}

// RegionStatus is the item of the region dump hook.
type RegionStatus struct {
	Index int
	OK    bool
}

// MaintenanceTick is the item of the maintenance hook.
type MaintenanceTick struct {
	Tick    uint64
	Modules int
}
