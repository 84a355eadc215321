package experiment

import (
	"encoding/json"
	"os"

	"github.com/jonboulle/clockwork"
)

// 参数扫描：跑参数组合的笛卡尔积，聚合各格子的计时统计

// DefaultQueueLadder 队列容量阶梯
var DefaultQueueLadder = []int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 20, 30, 40, 50,
	100, 150, 200, 250, 300, 350, 400, 450, 500,
}

// DefaultSweepQueueLadder 流数扫描下使用的较粗队列阶梯
var DefaultSweepQueueLadder = []int{
	10, 20, 30, 40, 50, 100, 150, 200, 250, 300, 350, 400, 450, 500,
}

// DefaultFlowLadder 流数量阶梯
var DefaultFlowLadder = []int{
	100, 1000, 10000, 20000, 30000, 40000, 50000,
	60000, 70000, 80000, 90000, 100000,
}

// SweepQueueSizes 对每种算法 × 每个队列容量执行 times 次
func SweepQueueSizes(base Params, times int, queues []int, clock clockwork.Clock) ([]RunStats, error) {
	algs := []AlgType{AlgNone, AlgBaseline, AlgRanked}
	out := make([]RunStats, 0, len(algs)*len(queues))
	num := 0
	for _, alg := range algs {
		for _, q := range queues {
			p := base
			p.Alg = alg
			p.QueueSize = q
			p.Validate = false
			num++
			p.Number = num
			stats, err := RunRepeated(p, times, clock)
			if err != nil {
				return nil, err
			}
			out = append(out, stats)
		}
	}
	return out, nil
}

// SweepFlowCounts 只用 ranked 算法，扫描流数量 × 队列容量
func SweepFlowCounts(base Params, times int, flows, queues []int, clock clockwork.Clock) ([]RunStats, error) {
	out := make([]RunStats, 0, len(flows)*len(queues))
	num := 0
	for _, fc := range flows {
		for _, q := range queues {
			p := base
			p.Alg = AlgRanked
			p.FlowCount = fc
			p.QueueSize = q
			p.Validate = false
			num++
			p.Number = num
			stats, err := RunRepeated(p, times, clock)
			if err != nil {
				return nil, err
			}
			out = append(out, stats)
		}
	}
	return out, nil
}

// WriteSummary 把扫描结果整体写出为 JSON，先写临时文件再改名
func WriteSummary(path string, cells []RunStats) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cells); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
