package experiment

import (
	"fmt"

	"github.com/ErronZrz/flow-rank/internal/core"
	"github.com/ErronZrz/flow-rank/internal/util"
)

// Validator 让基准计数器与被测算法同步接收每次更新，
// 并在每次更新后逐组比对全量榜单
type Validator struct {
	oracle    *core.Baseline
	subject   core.Counter
	flowCount int
	want, got []core.RankItem // 比对缓冲，摊销分配
}

func NewValidator(subject core.Counter, flowCount int) *Validator {
	return &Validator{
		oracle:    core.NewBaseline(),
		subject:   subject,
		flowCount: flowCount,
		want:      make([]core.RankItem, 0, flowCount),
		got:       make([]core.RankItem, 0, flowCount),
	}
}

func (v *Validator) Append(id core.FlowID) { v.oracle.Append(id) }
func (v *Validator) Expire(id core.FlowID) { v.oracle.Expire(id) }

// Check 比对当前全量榜单；不一致时返回携带两侧结果与迭代号的错误
func (v *Validator) Check(iteration int) error {
	v.want = v.oracle.AppendTopK(v.want[:0], v.flowCount)
	v.got = v.subject.AppendTopK(v.got[:0], v.flowCount)
	if !RankingsEqual(v.want, v.got) {
		return fmt.Errorf("validation failed at iteration %d:\n  valid results   %v\n  invalid results %v",
			iteration, v.want, v.got)
	}
	return nil
}

// RankingsEqual 判断两份榜单等价：计数序列一致，
// 且每个计数组内的流集合一致（同计数的先后顺序不限）
func RankingsEqual(a, b []core.RankItem) bool {
	if len(a) != len(b) {
		return false
	}
	i := 0
	for i < len(a) {
		c := a[i].Count
		j := i
		sa := util.NewStringSet(4)
		sb := util.NewStringSet(4)
		for j < len(a) && a[j].Count == c {
			if b[j].Count != c {
				return false
			}
			sa.Add(a[j].FlowID)
			sb.Add(b[j].FlowID)
			j++
		}
		if !sa.Equal(sb) {
			return false
		}
		i = j
	}
	return true
}
