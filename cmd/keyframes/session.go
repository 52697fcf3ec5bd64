package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ivlev/keyframes/internal/animation"
	"github.com/ivlev/keyframes/internal/config"
	"github.com/ivlev/keyframes/internal/constraint"
	"github.com/ivlev/keyframes/internal/effect"
	"github.com/ivlev/keyframes/internal/engine"
	"github.com/ivlev/keyframes/internal/keyframe"
	"github.com/ivlev/keyframes/internal/registry"
	"github.com/ivlev/keyframes/internal/renderer"
	"github.com/ivlev/keyframes/internal/report"
)

var errRejected = errors.New("edit rejected")

// session is one document loaded into a model
type session struct {
	cfg   *config.Config
	meta  *registry.Metadata
	path  string
	doc   *effect.Document
	model *animation.Model
}

func modelOptions(cfg *config.Config) ([]animation.Option, error) {
	policies, ok := constraint.PoliciesByName(cfg.Policy)
	if !ok {
		return nil, fmt.Errorf("unknown policy %q", cfg.Policy)
	}
	return []animation.Option{
		animation.WithEvaluator(renderer.Sampler{}),
		animation.WithPolicies(policies),
	}, nil
}

func openSession(cfg *config.Config) (*session, error) {
	opts, err := modelOptions(cfg)
	if err != nil {
		return nil, err
	}

	meta, err := registry.ReadMetadata(cfg.MetadataPath)
	if err != nil {
		return nil, err
	}

	path := cfg.DocumentPath
	if path == "" {
		path, err = effect.FindLatestDocument(cfg.DocumentDir)
		if err != nil {
			return nil, err
		}
		fmt.Printf("[*] Выбран документ: %s\n", path)
	}

	doc, err := effect.ReadDocument(path)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, meta: meta, path: path, doc: doc, model: animation.New(opts...)}
	if err := s.model.Load(meta, doc); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

func (s *session) save() error {
	if err := s.model.Check(); err != nil {
		return fmt.Errorf("model is inconsistent, not saving: %w", err)
	}
	if err := effect.WriteDocument(s.doc, s.path); err != nil {
		return err
	}
	fmt.Printf("[+++] Сохранено: %s\n", s.path)
	return nil
}

func (s *session) show() error {
	fmt.Println(report.Render(s.model))
	switch {
	case s.model.SimpleKeyframesInUse():
		fmt.Println("[*] Режим: простые ключевые кадры")
	case s.model.AdvancedKeyframesInUse():
		fmt.Println("[*] Режим: расширенные ключевые кадры")
	}
	return nil
}

func (s *session) export(args []string) error {
	if len(args) != 1 {
		return errors.New("export needs a property")
	}
	i, err := s.parameter(args[0])
	if err != nil {
		return err
	}
	keys := s.model.Keyframes(i)
	if len(keys) == 0 {
		v, _ := s.model.ValueAt(i, 0)
		fmt.Println(strconv.FormatFloat(v, 'f', -1, 64))
		return nil
	}
	fmt.Println(renderer.BuildExpression(keys, s.cfg.Variable, s.cfg.Step))
	return nil
}

// edit applies one mutating command to the model
func (s *session) edit(command string, args []string) error {
	m := s.model
	ok := true

	switch command {
	case "simplify":
		m.RemoveAdvancedKeyframes()
	case "unanimate":
		m.RemoveSimpleKeyframes()

	case "trim":
		if len(args) != 2 {
			return errors.New("trim needs <in> <out>")
		}
		in, out, err := twoInts(args[0], args[1])
		if err != nil {
			return err
		}
		if out < in {
			return fmt.Errorf("trim window [%d, %d] is empty", in, out)
		}
		s.doc.In, s.doc.Out = in, out
		m.TrimIn(in)
		m.TrimOut(out)

	case "add":
		if len(args) < 2 || len(args) > 4 {
			return errors.New("add needs <property> <frame> [value] [type]")
		}
		i, err := s.parameter(args[0])
		if err != nil {
			return err
		}
		position, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		if len(args) == 2 {
			ok = m.AddKeyframeAt(i, position)
			break
		}
		value, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return err
		}
		t := keyframe.Linear
		if len(args) == 4 {
			if t, err = keyframe.ParseInterpolation(args[3]); err != nil {
				return err
			}
		}
		ok = m.AddKeyframe(i, value, position, t)

	default:
		if len(args) < 2 {
			return fmt.Errorf("%s needs <property> <frame>", command)
		}
		i, err := s.parameter(args[0])
		if err != nil {
			return err
		}
		k, err := s.keyframeAt(i, args[1])
		if err != nil {
			return err
		}
		ok, err = s.editKeyframe(command, i, k, args[2:])
		if err != nil {
			return err
		}
	}

	if !ok {
		return fmt.Errorf("%s %v: %w", command, args, errRejected)
	}
	return nil
}

func (s *session) editKeyframe(command string, i, k int, args []string) (bool, error) {
	m := s.model
	switch command {
	case "remove":
		return m.Remove(i, k), nil

	case "move":
		if len(args) < 1 || len(args) > 2 {
			return false, errors.New("move needs <new frame> [value]")
		}
		position, err := strconv.Atoi(args[0])
		if err != nil {
			return false, err
		}
		if len(args) == 1 {
			return m.SetKeyframePosition(i, k, position), nil
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return false, err
		}
		return m.SetKeyframeValuePosition(i, k, value, position), nil

	case "interp":
		if len(args) != 1 {
			return false, errors.New("interp needs <type>")
		}
		t, err := keyframe.ParseInterpolation(args[0])
		if err != nil {
			return false, err
		}
		return m.SetInterpolation(i, k, t), nil

	case "value":
		if len(args) != 1 {
			return false, errors.New("value needs <value>")
		}
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return false, err
		}
		return m.SetKeyframeValue(i, k, value), nil
	}
	return false, fmt.Errorf("unknown command %q", command)
}

func (s *session) parameter(property string) (int, error) {
	i := s.model.ParameterIndex(property)
	if i < 0 {
		return -1, fmt.Errorf("%s has no animatable parameter %q", s.doc.Kind(), property)
	}
	return i, nil
}

func (s *session) keyframeAt(i int, frame string) (int, error) {
	position, err := strconv.Atoi(frame)
	if err != nil {
		return -1, err
	}
	k := s.model.KeyframeIndex(i, position)
	if k < 0 {
		return -1, fmt.Errorf("no keyframe at frame %d", position)
	}
	return k, nil
}

func twoInts(a, b string) (int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func runCheck(ctx context.Context, cfg *config.Config, paths []string) error {
	opts, err := modelOptions(cfg)
	if err != nil {
		return err
	}
	meta, err := registry.ReadMetadata(cfg.MetadataPath)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		if paths, err = effect.FindDocuments(cfg.DocumentDir); err != nil {
			return err
		}
	}

	results, err := engine.NewChecker(meta, cfg.Workers, opts...).CheckAll(ctx, paths)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		fmt.Printf("[+] %s: параметров %d, ключевых кадров %d\n", r.Path, r.Parameters, r.Keyframes)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}
