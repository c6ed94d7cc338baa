package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/teris-io/shortid"
	pb "gopkg.in/cheggaaa/pb.v1"

	"geotile"
	"geotile/geom"
	"geotile/render"
)

// RenderJob names one bounding box, at one zoom, to render to one PNG.
type RenderJob struct {
	Name string
	Box  geom.GeographicBoundingBox
	Zoom int
}

// RenderTask fans render jobs out over a worker pool, mirroring the
// original downloader's worker-channel-plus-waitgroup shape: an ID for
// logging, a bounded worker channel and a progress bar ticked once per
// completed job.
type RenderTask struct {
	ID      string
	Store   *geotile.Store
	Styles  *render.StyleTable
	Width   int
	Height  int
	OutDir  string
	Workers int
	Bar     *pb.ProgressBar

	wg      sync.WaitGroup
	workers chan RenderJob
}

// NewRenderTask builds a task bound to an open store.
func NewRenderTask(store *geotile.Store, styles *render.StyleTable, width, height, workers int, outDir string) *RenderTask {
	id, _ := shortid.Generate()
	return &RenderTask{
		ID:      id,
		Store:   store,
		Styles:  styles,
		Width:   width,
		Height:  height,
		OutDir:  outDir,
		Workers: workers,
		workers: make(chan RenderJob, workers),
	}
}

// Run renders every job, workers at a time, writing one PNG per job
// under OutDir, and blocks until all of them finish.
func (t *RenderTask) Run(jobs []RenderJob) error {
	if len(jobs) == 0 {
		return nil
	}
	if err := os.MkdirAll(t.OutDir, os.ModePerm); err != nil {
		return fmt.Errorf("geotile-render: create output dir: %w", err)
	}

	t.Bar = pb.New(len(jobs)).Prefix(fmt.Sprintf("task %s : ", t.ID))
	t.Bar.Start()

	for i := 0; i < t.Workers; i++ {
		t.wg.Add(1)
		go t.worker()
	}

	for _, job := range jobs {
		t.workers <- job
	}
	close(t.workers)
	t.wg.Wait()

	t.Bar.FinishPrint(fmt.Sprintf("task %s finished ~", t.ID))
	return nil
}

func (t *RenderTask) worker() {
	defer t.wg.Done()
	for job := range t.workers {
		if err := t.renderOne(job); err != nil {
			log.Errorf("render job %s failed: %v", job.Name, err)
		}
		t.Bar.Increment()
	}
}

func (t *RenderTask) renderOne(job RenderJob) error {
	bbox := geom.NewScreenBoundingBox()
	queue := render.NewQueue()

	err := t.Store.ForEachFeature(job.Box, job.Zoom, func(f geom.MapFeatureData) bool {
		render.Tessellate(f, &bbox, queue, t.Styles)
		return true
	})
	if err != nil {
		return fmt.Errorf("iterate %s: %w", job.Name, err)
	}

	canvas := render.Render(queue, bbox, t.Width, t.Height)

	path := filepath.Join(t.OutDir, job.Name+".png")
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if err := png.Encode(out, canvas.Image()); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	log.Debugf("wrote %s", path)
	return nil
}
