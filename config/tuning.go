package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Tuning is an optional YAML overlay for the compiled-in defaults. Any
// field left out of the file keeps its default, so a tuning file only
// needs the values being experimented with.
type Tuning struct {
	Player *struct {
		JumpSpeed       *float64 `yaml:"jump_speed"`
		Acceleration    *float64 `yaml:"acceleration"`
		MaxSpeed        *float64 `yaml:"max_speed"`
		Friction        *float64 `yaml:"friction"`
		Gravity         *float64 `yaml:"gravity"`
		CrouchWalkSpeed *float64 `yaml:"crouch_walk_speed"`
	} `yaml:"player"`

	Physics *struct {
		Gravity        *float64 `yaml:"gravity"`
		MaxFallSpeed   *float64 `yaml:"max_fall_speed"`
		WallSlideSpeed *float64 `yaml:"wall_slide_speed"`
	} `yaml:"physics"`

	Controller *struct {
		SkinWidth          *float64 `yaml:"skin_width"`
		HorizontalRayCount *int     `yaml:"horizontal_ray_count"`
		VerticalRayCount   *int     `yaml:"vertical_ray_count"`
		MaxClimbAngle      *float64 `yaml:"max_climb_angle"`
		MaxDescendAngle    *float64 `yaml:"max_descend_angle"`
	} `yaml:"controller"`

	Camera *struct {
		FollowSmoothing    *float64 `yaml:"follow_smoothing"`
		LookAheadDistanceX *float64 `yaml:"look_ahead_distance_x"`
		LookAheadSmoothing *float64 `yaml:"look_ahead_smoothing"`
	} `yaml:"camera"`
}

// LoadTuning reads a YAML tuning file and applies it over the global
// config values. A missing file is not an error.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("config: unmarshal %s: %w", path, err)
	}

	t.apply()
	return nil
}

func (t *Tuning) apply() {
	if p := t.Player; p != nil {
		setF(&Player.JumpSpeed, p.JumpSpeed)
		setF(&Player.Acceleration, p.Acceleration)
		setF(&Player.MaxSpeed, p.MaxSpeed)
		setF(&Player.Friction, p.Friction)
		setF(&Player.Gravity, p.Gravity)
		setF(&Player.CrouchWalkSpeed, p.CrouchWalkSpeed)
	}
	if p := t.Physics; p != nil {
		setF(&Physics.Gravity, p.Gravity)
		setF(&Physics.MaxFallSpeed, p.MaxFallSpeed)
		setF(&Physics.WallSlideSpeed, p.WallSlideSpeed)
	}
	if c := t.Controller; c != nil {
		setF(&Controller.SkinWidth, c.SkinWidth)
		setI(&Controller.HorizontalRayCount, c.HorizontalRayCount)
		setI(&Controller.VerticalRayCount, c.VerticalRayCount)
		setF(&Controller.MaxClimbAngle, c.MaxClimbAngle)
		setF(&Controller.MaxDescendAngle, c.MaxDescendAngle)
	}
	if c := t.Camera; c != nil {
		setF(&Camera.FollowSmoothing, c.FollowSmoothing)
		setF(&Camera.LookAheadDistanceX, c.LookAheadDistanceX)
		setF(&Camera.LookAheadSmoothing, c.LookAheadSmoothing)
	}
}

func setF(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setI(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// Watcher reloads the tuning overlay when the file changes on disk,
// for live tweaking during development.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchTuning watches the directory containing path and re-applies the
// overlay on every write to it. Reload errors go to the Errors channel.
func WatchTuning(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run(path)
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run(path string) {
	// run owns Events and Errors; they close only after the loop exits,
	// never while a send may be in flight.
	defer close(w.Errors)
	defer close(w.Events)

	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !sameFile(event.Name, path) {
				continue
			}
			// Editors fire several events per save.
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now
			if err := LoadTuning(path); err != nil {
				select {
				case w.Errors <- err:
				default:
				}
				continue
			}
			select {
			case w.Events <- path:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func sameFile(a, b string) bool {
	return strings.EqualFold(filepath.Clean(a), filepath.Clean(b))
}
