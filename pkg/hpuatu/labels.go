package hpuatu

// Labels holds every piece of display text used by the two diagrams.
type Labels struct {
	HPUCluster string
	Input      string
	Unified    string
	ModeA      string
	ModeB      string
	Output     string

	ATU     string
	AddrMap string

	MemoryCluster string
	MemoryStore   string

	Compute  string
	Request  string
	Query    string
	GetAddr  string
	ReadData string

	QueryEdge    string // get_addr -> memory
	FeedbackEdge string // compute -> atu

	SimplifiedHPU     string
	SimplifiedMemory  string
	SimplifiedProcess string

	// Confirmation lines printed after a diagram is written; %s is the file name.
	DetailedSaved   string
	SimplifiedSaved string
}

// chinese is the default label set.
var chinese = Labels{
	HPUCluster: "HPU (混合主元选取)",
	Input:      "输入: 当前列",
	Unified:    "统一主元逻辑",
	ModeA:      "模式A (阈值法)",
	ModeB:      "模式B (竞标赛)",
	Output:     "输出: 主元索引 ipiv",

	ATU:     "ATU\n(地址翻译单元)",
	AddrMap: "生成地址映射表\n(addr_map)",

	MemoryCluster: "物理内存 (DDR/SRAM)",
	MemoryStore:   "数据存储按物理地址",

	Compute:  "计算核\n(Panel-GEPP, etc.)",
	Request:  "请求逻辑行",
	Query:    "ATU 查询",
	GetAddr:  "获取物理地址",
	ReadData: "实际数据读取",

	QueryEdge:    "查询",
	FeedbackEdge: "查询请求",

	SimplifiedHPU:     "HPU (混合主元选取)\n\n[输入: 当前列]\n    ↓\n统一主元逻辑\n  ├─ 模式A (阈值法)\n  └─ 模式B (竞标赛)\n    ↓\n[输出: 主元索引 ipiv]",
	SimplifiedMemory:  "物理内存 (DDR/SRAM)\n\n数据存储按物理地址",
	SimplifiedProcess: "请求逻辑行 → ATU 查询 → 获取物理地址\n\n↓\n\n← 实际数据读取",

	DetailedSaved:   "详细版本已保存为 %s",
	SimplifiedSaved: "简化版本已保存为 %s",
}

// english translates the Chinese label set.
var english = Labels{
	HPUCluster: "HPU (Hybrid Pivot Selection)",
	Input:      "Input: current column",
	Unified:    "Unified pivot logic",
	ModeA:      "Mode A (threshold)",
	ModeB:      "Mode B (tournament)",
	Output:     "Output: pivot index ipiv",

	ATU:     "ATU\n(Address Translation Unit)",
	AddrMap: "Build address map\n(addr_map)",

	MemoryCluster: "Physical memory (DDR/SRAM)",
	MemoryStore:   "Data stored by physical address",

	Compute:  "Compute core\n(Panel-GEPP, etc.)",
	Request:  "Request logical row",
	Query:    "ATU lookup",
	GetAddr:  "Get physical address",
	ReadData: "Actual data read",

	QueryEdge:    "lookup",
	FeedbackEdge: "lookup request",

	SimplifiedHPU:     "HPU (Hybrid Pivot Selection)\n\n[Input: current column]\n    ↓\nUnified pivot logic\n  ├─ Mode A (threshold)\n  └─ Mode B (tournament)\n    ↓\n[Output: pivot index ipiv]",
	SimplifiedMemory:  "Physical memory (DDR/SRAM)\n\nData stored by physical address",
	SimplifiedProcess: "Request logical row → ATU lookup → Get physical address\n\n↓\n\n← Actual data read",

	DetailedSaved:   "Detailed version saved as %s",
	SimplifiedSaved: "Simplified version saved as %s",
}

// Language codes accepted by [LabelsFor].
const (
	LangChinese = "zh"
	LangEnglish = "en"
)

// Languages lists the supported label languages.
var Languages = []string{LangChinese, LangEnglish}

// LabelsFor returns the label set for lang and whether lang is supported.
// The returned value is a copy.
func LabelsFor(lang string) (Labels, bool) {
	switch lang {
	case LangChinese, "":
		return chinese, true
	case LangEnglish:
		return english, true
	default:
		return Labels{}, false
	}
}
