package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arjun/placehub/internal/app/controllers"
	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/middleware"
)

// Controllers bundles every controller the router needs
type Controllers struct {
	Auth      *controllers.AuthController
	Branch    *controllers.BranchController
	Company   *controllers.CompanyController
	Criteria  *controllers.CriteriaController
	Drive     *controllers.DriveController
	Student   *controllers.StudentController
	Placement *controllers.PlacementController
	Stats     *controllers.StatsController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	c Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/coordinator/login", c.Auth.LoginCoordinator)
		auth.POST("/student/login", c.Auth.LoginStudent)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	coordinatorOnly := authMiddleware.RoleRequired(models.RoleCoordinator)

	// Branch routes: reads for any authenticated caller, writes for
	// coordinators only. The same split applies to companies, criteria
	// and drives below.
	branches := authenticated.Group("/branches")
	{
		branches.GET("", c.Branch.GetAllBranches)
		branches.GET("/:id", c.Branch.GetBranchByID)

		branchesProtected := branches.Group("")
		branchesProtected.Use(coordinatorOnly)
		{
			branchesProtected.POST("", c.Branch.CreateBranch)
			branchesProtected.PUT("/:id", c.Branch.UpdateBranch)
			branchesProtected.DELETE("/:id", c.Branch.DeleteBranch)
		}
	}

	companies := authenticated.Group("/companies")
	{
		companies.GET("", c.Company.GetAllCompanies)
		companies.GET("/:id", c.Company.GetCompanyByID)

		companiesProtected := companies.Group("")
		companiesProtected.Use(coordinatorOnly)
		{
			companiesProtected.POST("", c.Company.CreateCompany)
			companiesProtected.PUT("/:id", c.Company.UpdateCompany)
			companiesProtected.DELETE("/:id", c.Company.DeleteCompany)
		}
	}

	criteria := authenticated.Group("/criteria")
	{
		criteria.GET("", c.Criteria.GetAllCriteria)
		criteria.GET("/:id", c.Criteria.GetCriteriaByID)

		criteriaProtected := criteria.Group("")
		criteriaProtected.Use(coordinatorOnly)
		{
			criteriaProtected.POST("", c.Criteria.CreateCriteria)
			criteriaProtected.PUT("/:id", c.Criteria.UpdateCriteria)
			criteriaProtected.DELETE("/:id", c.Criteria.DeleteCriteria)
		}
	}

	drives := authenticated.Group("/drives")
	{
		drives.GET("", c.Drive.GetAllDrives)
		drives.GET("/:id", c.Drive.GetDriveByID)

		drivesProtected := drives.Group("")
		drivesProtected.Use(coordinatorOnly)
		{
			drivesProtected.POST("", c.Drive.CreateDrive)
			drivesProtected.PUT("/:id", c.Drive.UpdateDrive)
			drivesProtected.DELETE("/:id", c.Drive.DeleteDrive)
		}
	}

	// Student routes: students may read and change only their own
	// record; coordinators manage the roster.
	students := authenticated.Group("/students")
	{
		studentsCoordinator := students.Group("")
		studentsCoordinator.Use(coordinatorOnly)
		{
			studentsCoordinator.GET("", c.Student.GetAllStudents)
			studentsCoordinator.POST("", c.Student.CreateStudent)
			studentsCoordinator.DELETE("/:id", c.Student.DeleteStudent)
		}

		studentsSelf := students.Group("")
		studentsSelf.Use(authMiddleware.StudentSelfOrCoordinator())
		{
			studentsSelf.GET("/:id", c.Student.GetStudentByID)
			studentsSelf.PUT("/:id", c.Student.UpdateStudent)
			studentsSelf.POST("/:id/resume", c.Student.UploadResume)
			studentsSelf.GET("/:id/eligible-drives", c.Student.GetEligibleDrives)
		}
	}

	placements := authenticated.Group("/placements")
	{
		placements.POST("/apply", c.Placement.Apply)

		placementsProtected := placements.Group("")
		placementsProtected.Use(coordinatorOnly)
		{
			placementsProtected.GET("", c.Placement.ListPlacements)
			placementsProtected.GET("/:id", c.Placement.GetPlacementByID)
			placementsProtected.POST("", c.Placement.CreatePlacement)
			placementsProtected.PUT("/:id", c.Placement.UpdatePlacement)
			placementsProtected.DELETE("/:id", c.Placement.DeletePlacement)
			placementsProtected.POST("/update-offered-packages", c.Placement.UpdateOfferedPackages)
		}
	}

	stats := authenticated.Group("/stats")
	stats.Use(coordinatorOnly)
	{
		stats.GET("/dashboard", c.Stats.GetDashboardStats)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})

	// Prometheus metrics (public, scraped internally)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger routes are set up in bootstrap.go already
}
