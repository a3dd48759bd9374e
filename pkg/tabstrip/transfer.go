package tabstrip

import "sync"

// TransferData is the payload carried when a tab is detached into a new
// window: enough to rebuild the editor state on the receiving side.
type TransferData struct {
	TabID        string `yaml:"tab_id" json:"tabId"`
	Title        string `yaml:"title" json:"title"`
	FilePath     string `yaml:"file_path,omitempty" json:"filePath,omitempty"`
	Content      string `yaml:"content" json:"content"`
	SavedContent string `yaml:"saved_content" json:"savedContent"`
	IsDirty      bool   `yaml:"is_dirty" json:"isDirty"`
}

// TransferRegistry holds pending tab transfers keyed by target window
// label. A transfer is stored when the tab detaches and removed when the
// new window claims it; unclaimed entries are cleared when the target
// window dies so nothing leaks.
type TransferRegistry struct {
	mu      sync.Mutex
	pending map[string]TransferData
}

// NewTransferRegistry returns an empty registry.
func NewTransferRegistry() *TransferRegistry {
	return &TransferRegistry{pending: make(map[string]TransferData)}
}

// Store records transfer data for the window with the given label,
// replacing any previous entry.
func (r *TransferRegistry) Store(windowLabel string, data TransferData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[windowLabel] = data
}

// Claim returns and removes the transfer data for a window. The second
// result is false when nothing is pending for that label.
func (r *TransferRegistry) Claim(windowLabel string) (TransferData, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, ok := r.pending[windowLabel]
	if ok {
		delete(r.pending, windowLabel)
	}
	return data, ok
}

// ClearUnclaimed drops any pending transfer for a window that was
// destroyed before claiming it.
func (r *TransferRegistry) ClearUnclaimed(windowLabel string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, windowLabel)
}
