package service

import "fmt"

var (
	ErrCreateView        = fmt.Errorf("cannot create view")
	ErrQueryTopArticles  = fmt.Errorf("cannot query top articles")
	ErrQueryAuthorTotals = fmt.Errorf("cannot query author totals")
	ErrQueryErrorDays    = fmt.Errorf("cannot query high error days")
	ErrPublishReport     = fmt.Errorf("cannot publish report")
)
