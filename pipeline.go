package delaunay

import (
	"sync"

	"github.com/akmonengine/delaunay/mesh2"
	"github.com/akmonengine/delaunay/mesh3"
	"github.com/go-gl/mathgl/mgl64"
)

// task runs fn once per contiguous [start, end) chunk of a dataSize-long
// sequence, split as evenly as possible across workersCount goroutines,
// and waits for every chunk to finish.
func task(workersCount, dataSize int, fn func(start, end int)) {
	if workersCount < 1 {
		workersCount = 1
	}
	var wg sync.WaitGroup
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start := workerID * chunkSize
		end := min((workerID+1)*chunkSize, dataSize)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

// BuildManyDelaunay2D runs BuildDelaunay2D over each of batches
// concurrently, workers at a time (workers < 1 behaves as 1), and
// returns one mesh/error pair per batch in the corresponding order.
// Each batch owns its own mesh, so this is safe even though a single
// BuildDelaunay2D call is itself single-threaded and synchronous.
func BuildManyDelaunay2D(batches [][]mgl64.Vec2, workers int) ([]*mesh2.Mesh, []error) {
	meshes := make([]*mesh2.Mesh, len(batches))
	errs := make([]error, len(batches))
	task(workers, len(batches), func(start, end int) {
		for i := start; i < end; i++ {
			meshes[i], errs[i] = BuildDelaunay2D(batches[i])
		}
	})
	return meshes, errs
}

// BuildManyDelaunay3D is BuildManyDelaunay2D's three-dimensional
// counterpart.
func BuildManyDelaunay3D(batches [][]mgl64.Vec3, workers int) ([]*mesh3.Mesh, []error) {
	meshes := make([]*mesh3.Mesh, len(batches))
	errs := make([]error, len(batches))
	task(workers, len(batches), func(start, end int) {
		for i := start; i < end; i++ {
			meshes[i], errs[i] = BuildDelaunay3D(batches[i])
		}
	})
	return meshes, errs
}
