package component

// Spawned marks shapes added by the spawner rather than the initial layout.
type Spawned struct {
	Step int64
}

var SpawnedComponent = NewComponent[Spawned]()
