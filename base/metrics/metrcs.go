/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"github.com/spf13/viper"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: []string{
				// using host removes all tags associated with host
				// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
				"host:",
				"env:" + viper.GetString("env_name"),
				"app:" + viper.GetString("app_name"),
			},
		},
	}
}

// Metrics prefixes every key with the package name and swallows panics
// raised by a misbehaving client.
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + "." + key
}

func (mt *Metrics) bumpSumPanic(key string) {
	if err := recover(); err != nil {
		mt.datadog.BumpSum("bump.panic", 1, "key", mt.key(key))
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.bumpSumPanic(key)
	mt.datadog.BumpAvg(mt.key(key), val, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.bumpSumPanic(key)
	mt.datadog.BumpSum(mt.key(key), val, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.bumpSumPanic(key)
	mt.datadog.BumpHistogram(mt.key(key), val, tags...)
}

// BumpTime is a special version of BumpHistogram which is specialized for
// timers. A convenient way of recording the duration of a function is:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		ddEnd: mt.datadog.BumpTime(mt.key(key), tags...),
		onPanic: func() {
			mt.datadog.BumpSum("bump.panic", 1, "key", mt.key(key))
		},
	}
}

type timeTracker struct {
	ddEnd   Ender
	onPanic func()
}

func (t *timeTracker) End() {
	defer func() {
		if err := recover(); err != nil {
			t.onPanic()
		}
	}()
	t.ddEnd.End()
}
