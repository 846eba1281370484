package metrics

import "time"

type noopMetrics struct{}

var NoopMetrics Metricer = new(noopMetrics)

func (*noopMetrics) RecordInfo(version string) {}
func (*noopMetrics) RecordUp()                 {}

func (*noopMetrics) RecordRead(string, time.Duration, error) {}
func (*noopMetrics) RecordSlotValue(string, float64)         {}
func (*noopMetrics) RecordQueryError(string)                 {}
