package system

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Stats is a snapshot of the resources the tool is using
type Stats struct {
	RSS          uint64  // Resident memory of this process, bytes
	HeapAlloc    uint64  // Live Go heap, bytes
	Goroutines   int
	SystemUsed   float64 // Percent of system memory in use
	SystemTotal  uint64  // Bytes
	SystemLookup error   // Set when the OS could not be queried
}

// CollectStats gathers process and system memory figures. Go runtime figures
// are always filled; OS figures are best effort.
func CollectStats() Stats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s := Stats{
		HeapAlloc:  ms.HeapAlloc,
		Goroutines: runtime.NumGoroutine(),
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		s.SystemLookup = err
		return s
	}
	if info, err := proc.MemoryInfo(); err == nil {
		s.RSS = info.RSS
	} else {
		s.SystemLookup = err
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		s.SystemLookup = err
		return s
	}
	s.SystemUsed = vm.UsedPercent
	s.SystemTotal = vm.Total
	return s
}

func (s Stats) String() string {
	out := fmt.Sprintf("heap %s, goroutines %d", formatBytes(s.HeapAlloc), s.Goroutines)
	if s.RSS > 0 {
		out += fmt.Sprintf(", rss %s", formatBytes(s.RSS))
	}
	if s.SystemTotal > 0 {
		out += fmt.Sprintf(", system %.1f%% of %s", s.SystemUsed, formatBytes(s.SystemTotal))
	}
	return out
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
