package base

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"

	predictably "github.com/predict-ably/predictably-go"
	"github.com/predict-ably/predictably-go/internal/iterutil"
)

// paramTag is the struct tag renaming a field's parameter name. A tag value
// of "-" excludes the field from the parameter interface, which is how
// learned state on estimators stays out of GetParams and Clone.
const paramTag = "param"

// UnknownParameterError is returned by SetParams for parameter names the
// object does not have.
type UnknownParameterError struct {
	Object string
	Params []string
	Known  []string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameters %s for %s, valid parameters are %s",
		iterutil.FormatSeqToStr(iterutil.ToAnySlice(e.Params), "and"), e.Object,
		iterutil.FormatSeqToStr(iterutil.ToAnySlice(e.Known), "and"))
}

// NotFittedError is returned by CheckIsFitted for estimators that require
// fitting before use.
type NotFittedError struct {
	Object string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("%s has not been fitted yet, call Fit before using it", e.Object)
}

// ParamNames returns the sorted parameter names of obj, a struct or pointer
// to struct. Exported embedded structs contribute their own parameters, see
// paramFields.
func ParamNames(obj any) ([]string, error) {
	t, err := structTypeOf(obj)
	if err != nil {
		return nil, err
	}
	fields := paramFields(t)
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.name
	}
	sort.Strings(names)
	return names, nil
}

// GetParams returns obj's parameters as a name to value map.
func GetParams(obj any) (map[string]any, error) {
	v, err := structValueOf(obj)
	if err != nil {
		return nil, err
	}
	fields := paramFields(v.Type())
	params := make(map[string]any, len(fields))
	for _, field := range fields {
		params[field.name] = v.FieldByIndex(field.index).Interface()
	}
	return params, nil
}

// SetParams applies the supplied parameters to obj, a non-nil pointer to
// struct. Unknown parameter names produce an *UnknownParameterError and no
// field is modified. Values decode with weak typing, so a string "10" can
// populate an int parameter.
func SetParams(obj any, params map[string]any) error {
	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("SetParams target must be non-nil pointer to struct, got %T", obj)
	}

	known, err := ParamNames(obj)
	if err != nil {
		return err
	}
	knownSet := make(map[string]bool, len(known))
	for _, name := range known {
		knownSet[name] = true
	}

	var unknown []string
	for name := range params {
		if !knownSet[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &UnknownParameterError{
			Object: objectName(obj),
			Params: unknown,
			Known:  known,
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           obj,
		TagName:          paramTag,
		WeaklyTypedInput: true,
		Squash:           true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(params); err != nil {
		return fmt.Errorf("failed to set parameters on %s: %w", objectName(obj), err)
	}
	return nil
}

// Clone returns a fresh instance of the same type carrying obj's parameters.
// Non-parameter state (fields tagged `param:"-"`) is not copied, so a cloned
// estimator starts unfitted.
func Clone[T any](obj *T) (*T, error) {
	params, err := GetParams(obj)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := SetParams(out, params); err != nil {
		return nil, err
	}
	return out, nil
}

// Tagged is implemented by objects carrying static tags: named properties of
// the type itself, such as capability flags, as opposed to parameters.
type Tagged interface {
	Tags() map[string]any
}

// Tag returns obj's tag value for name, or fallback when obj has no such tag
// or no tags at all.
func Tag(obj any, name string, fallback any) any {
	tagged, ok := obj.(Tagged)
	if !ok {
		return fallback
	}
	if value, exists := tagged.Tags()[name]; exists {
		return value
	}
	return fallback
}

// Configured is implemented by objects that locally override global
// configuration options.
type Configured interface {
	ConfigOverrides() predictably.Settings
}

// EffectiveConfig returns the configuration in effect for obj: the global
// configuration overlaid with the object's local overrides. A local override
// that fails its option's validation falls back to the global value, so an
// object can never put an invalid value into effect.
func EffectiveConfig(obj any) predictably.Settings {
	config := predictably.GetConfig()

	configured, ok := obj.(Configured)
	if !ok {
		return config
	}

	registry := predictably.Default().Registry()
	for name, value := range configured.ConfigOverrides() {
		if opt, known := registry.Lookup(name); known {
			config[name] = opt.ValidOrDefault(value, config[name])
		} else {
			config[name] = value
		}
	}
	return config
}

// Fitted is implemented by estimators that track whether Fit has run.
type Fitted interface {
	IsFitted() bool
}

// CheckIsFitted returns a *NotFittedError unless obj reports itself fitted.
func CheckIsFitted(obj Fitted) error {
	if obj.IsFitted() {
		return nil
	}
	return &NotFittedError{Object: objectName(obj)}
}

// Repr renders obj as Name(param=value, ...) in sorted parameter order. When
// the print_changed_only option is set in obj's effective configuration
// (global settings overlaid with the object's local overrides), only
// parameters differing from the type's defaults (a freshly constructed
// instance) are shown.
func Repr(obj any) string {
	params, err := GetParams(obj)
	if err != nil {
		return fmt.Sprintf("%T", obj)
	}

	changedOnly := EffectiveConfig(obj)[predictably.OptionPrintChangedOnly]
	if changedOnly == true {
		if defaults := defaultParams(obj); defaults != nil {
			for name, value := range params {
				if reflect.DeepEqual(value, defaults[name]) {
					delete(params, name)
				}
			}
		}
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%s", name, formatParamValue(params[name]))
	}
	return fmt.Sprintf("%s(%s)", objectName(obj), strings.Join(parts, ", "))
}

func formatParamValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

// defaultParams builds the parameter map of a zero-value instance of obj's
// type, used as the reference point for changed-only rendering.
func defaultParams(obj any) map[string]any {
	t, err := structTypeOf(obj)
	if err != nil {
		return nil
	}
	fresh := reflect.New(t).Interface()
	defaults, err := GetParams(fresh)
	if err != nil {
		return nil
	}
	return defaults
}

// paramField locates one parameter inside a struct type. The index is a
// field path so that parameters promoted from embedded structs resolve
// through FieldByIndex.
type paramField struct {
	name  string
	index []int
}

// paramFields lists the parameters of a struct type. Exported embedded
// structs are flattened into the parent's parameter set, with the parent's
// own fields taking precedence on name collisions. Unexported embedded
// fields are not part of the parameter surface.
func paramFields(t reflect.Type) []paramField {
	var fields []paramField
	collectParamFields(t, nil, make(map[string]bool), &fields)
	return fields
}

func collectParamFields(t reflect.Type, path []int, seen map[string]bool, out *[]paramField) {
	var embedded []int
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.IsExported() && field.Type.Kind() == reflect.Struct &&
			field.Tag.Get(paramTag) != "-" {
			embedded = append(embedded, i)
			continue
		}
		name, ok := paramName(field)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		index := append(append([]int(nil), path...), i)
		*out = append(*out, paramField{name: name, index: index})
	}
	for _, i := range embedded {
		index := append(append([]int(nil), path...), i)
		collectParamFields(t.Field(i).Type, index, seen, out)
	}
}

// paramName maps a struct field to its parameter name. Unexported fields and
// fields tagged `param:"-"` have none.
func paramName(field reflect.StructField) (string, bool) {
	if !field.IsExported() {
		return "", false
	}
	tag := field.Tag.Get(paramTag)
	if tag == "-" {
		return "", false
	}
	if tag != "" {
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		if tag != "" {
			return tag, true
		}
	}
	return field.Name, true
}

func objectName(obj any) string {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "object"
	}
	return t.Name()
}

func structTypeOf(obj any) (reflect.Type, error) {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", obj)
	}
	return t, nil
}

func structValueOf(obj any) (reflect.Value, error) {
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("expected struct or pointer to struct, got nil %T", obj)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("expected struct or pointer to struct, got %T", obj)
	}
	return v, nil
}
