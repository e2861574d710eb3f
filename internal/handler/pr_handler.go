package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mishasvintus/pr_range_explorer/internal/domain"
	"github.com/mishasvintus/pr_range_explorer/internal/service"
)

// PRHandler handles pull request-related HTTP requests.
type PRHandler struct {
	prService PRServiceInterface
	policy    service.CredentialPolicy
	log       logrus.FieldLogger
}

// NewPRHandler creates a new PR handler.
func NewPRHandler(prService PRServiceInterface, policy service.CredentialPolicy, log logrus.FieldLogger) *PRHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PRHandler{
		prService: prService,
		policy:    policy,
		log:       log,
	}
}

// GetPulls handles GET /pulls.
func (h *PRHandler) GetPulls(c *gin.Context) {
	var req GetPullsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, bindingMessage(err))
		return
	}

	rng, err := domain.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	token, err := h.policy.Resolve(req.Token)
	if err != nil {
		if errors.Is(err, domain.ErrMissingCredential) {
			Unauthorized(c, err.Error())
			return
		}
		InternalError(c, err.Error())
		return
	}

	prs, err := h.prService.GetPullRequests(c.Request.Context(), service.PullRequestQuery{
		Owner: req.Owner,
		Repo:  req.Repo,
		Range: rng,
		Token: token,
	})
	if err != nil {
		// Not-found and upstream failures share one status.
		_ = c.Error(err)
		h.log.WithError(err).WithFields(logrus.Fields{
			"owner": req.Owner,
			"repo":  req.Repo,
		}).Error("failed to get pull requests")
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, prs)
}
