package disposable

type Disposable interface {
	Dispose()
}

type DisposableImp struct {
	disposed bool
	callback func()
}

// NewDisposable wraps callback so that it runs at most once.
func NewDisposable(callback func()) *DisposableImp {
	return &DisposableImp{callback: callback}
}

func (d *DisposableImp) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	if d.callback != nil {
		d.callback()
	}
}

type CompositeDisposableImp struct {
	delegates []Disposable
}

func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{delegates: delegates}
}

func (d *CompositeDisposableImp) Add(delegate Disposable) {
	d.delegates = append(d.delegates, delegate)
}

// Dispose releases delegates in reverse order of registration.
func (d *CompositeDisposableImp) Dispose() {
	for i := len(d.delegates) - 1; i >= 0; i-- {
		d.delegates[i].Dispose()
	}
	d.delegates = nil
}
