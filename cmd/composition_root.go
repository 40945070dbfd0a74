package cmd

import (
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	extraction  ports.ExtractionClient
	attachments ports.AttachmentStore
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	extraction ports.ExtractionClient,
	attachments ports.AttachmentStore,
) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		extraction:  extraction,
		attachments: attachments,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveSelectionCommandHandler() commands.SaveSelectionCommandHandler {
	var f commands.SelectionUoWFactory = FuncSelectionUoWFactory(func() commands.SelectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveSelectionCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestTransitionCommandHandler() commands.RequestTransitionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestTransitionCommandHandler(f, c.attachments)
}

func (c *CompositionRoot) CreateAssignEmployeeCommandHandler() commands.AssignEmployeeCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateClassifyArtifactQueryHandler() queries.ClassifyArtifactQueryHandler {
	return queries.NewClassifyArtifactQueryHandler(c.extraction)
}

func (c *CompositionRoot) CreateGetSelectionQueryHandler() queries.GetSelectionQueryHandler {
	return queries.NewGetSelectionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusHistoryQueryHandler() queries.GetStatusHistoryQueryHandler {
	return queries.NewGetStatusHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRelevantAttachmentQueryHandler() queries.GetRelevantAttachmentQueryHandler {
	return queries.NewGetRelevantAttachmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUsersByDepartmentQueryHandler() queries.GetUsersByDepartmentQueryHandler {
	return queries.NewGetUsersByDepartmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalledOrdersQueryHandler() queries.GetStalledOrdersQueryHandler {
	return queries.NewGetStalledOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSelectionUoWFactory func() commands.SelectionUoW

func (f FuncSelectionUoWFactory) Create() commands.SelectionUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
