package mocks

//go:generate mockery --name FacetStore --srcpkg github.com/veyra-lab/project-veyra/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name AnalyticsStore --srcpkg github.com/veyra-lab/project-veyra/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
