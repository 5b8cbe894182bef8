package app

import (
	"net/http"

	"github.com/prperemyshlev/vidverse/internal/domain"
	"github.com/prperemyshlev/vidverse/internal/dto"
)

type authedUser struct {
	*client
	user domain.User
}

// signUp registers, verifies and logs in a fresh account
func (s *Suite) signUp(username string) authedUser {
	c := s.newClient()
	email := username + "@example.com"

	status, resp := c.json(http.MethodPost, "/api/v1/users/register", dto.RegisterRequest{
		FullName: "Test " + username,
		Email:    email,
		Username: username,
		Password: "Password123",
	})
	s.Require().Equal(http.StatusOK, status, resp.Message)

	code := s.infra.mailer.code(email)
	s.Require().Len(code, 6)

	status, resp = c.json(http.MethodPost, "/api/v1/users/verify", dto.VerifyRequest{Username: username, OTP: code})
	s.Require().Equal(http.StatusOK, status, resp.Message)

	status, resp = c.json(http.MethodPost, "/api/v1/users/login", dto.LoginRequest{Username: username, Password: "Password123"})
	s.Require().Equal(http.StatusOK, status, resp.Message)

	login := decodeData[struct {
		User domain.User `json:"user"`
	}](s, resp)
	return authedUser{client: c, user: login.User}
}

func (s *Suite) TestHealthEndpoint() {
	c := s.newClient()
	status, resp := c.json(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, status)
	s.True(resp.Success)
}

func (s *Suite) TestUnknownRoute() {
	status, resp := s.newClient().json(http.MethodGet, "/api/v1/nope", nil)
	s.Equal(http.StatusNotFound, status)
	s.False(resp.Success)
}

func (s *Suite) TestRegister_ConflictsAndVerification() {
	c := s.newClient()
	req := dto.RegisterRequest{FullName: "Alice", Email: "alice@example.com", Username: "alice", Password: "pw"}

	status, _ := c.json(http.MethodPost, "/api/v1/users/register", req)
	s.Require().Equal(http.StatusOK, status)

	// A pending registration can be repeated; it issues a fresh code.
	status, _ = c.json(http.MethodPost, "/api/v1/users/register", req)
	s.Require().Equal(http.StatusOK, status)

	status, resp := c.json(http.MethodPost, "/api/v1/users/verify", dto.VerifyRequest{Username: "alice", OTP: "000000x"})
	s.Equal(http.StatusBadRequest, status)
	s.Equal("Incorrect verification code", resp.Message)

	code := s.infra.mailer.code("alice@example.com")
	status, _ = c.json(http.MethodPost, "/api/v1/users/verify", dto.VerifyRequest{Username: "alice", OTP: code})
	s.Require().Equal(http.StatusOK, status)

	status, resp = c.json(http.MethodPost, "/api/v1/users/verify", dto.VerifyRequest{Username: "alice", OTP: code})
	s.Equal(http.StatusOK, status)
	s.Equal("Account is already verified", resp.Message)

	status, _ = c.json(http.MethodPost, "/api/v1/users/register", req)
	s.Equal(http.StatusConflict, status)
}

func (s *Suite) TestSessionLifecycle() {
	alice := s.signUp("alice")

	status, resp := alice.json(http.MethodGet, "/api/v1/users/current-user", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal("alice", decodeData[domain.User](s, resp).Username)

	status, resp = alice.json(http.MethodPost, "/api/v1/users/refresh-token", nil)
	s.Require().Equal(http.StatusOK, status, resp.Message)
	tokens := decodeData[dto.TokenResponse](s, resp)
	s.NotEmpty(tokens.RefreshToken)

	status, _ = alice.json(http.MethodPost, "/api/v1/users/logout", nil)
	s.Require().Equal(http.StatusOK, status)

	status, _ = alice.json(http.MethodGet, "/api/v1/users/current-user", nil)
	s.Equal(http.StatusUnauthorized, status)

	// The refresh slot was cleared on logout.
	status, _ = s.newClient().json(http.MethodPost, "/api/v1/users/refresh-token", dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	s.Equal(http.StatusUnauthorized, status)
}

func (s *Suite) TestVideoEngagement() {
	alice := s.signUp("alice")
	bob := s.signUp("bob")

	status, resp := alice.multipart(http.MethodPost, "/api/v1/videos",
		map[string]string{"title": "Intro", "description": "First upload", "duration": "12.5"},
		map[string]string{"videoFile": "intro.mp4", "thumbnail": "intro.png"},
	)
	s.Require().Equal(http.StatusCreated, status, resp.Message)
	video := decodeData[domain.Video](s, resp)
	s.True(s.infra.storage.has(video.VideoFile))
	s.True(s.infra.storage.has(video.Thumbnail))

	status, resp = bob.json(http.MethodGet, "/api/v1/videos?query=intro", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Contains(string(resp.Data), `"totalVideos":1`)

	status, resp = bob.json(http.MethodGet, "/api/v1/videos/"+video.ID, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(int64(1), decodeData[domain.VideoDetail](s, resp).Views)

	status, resp = bob.json(http.MethodPost, "/api/v1/like/toggle/v/"+video.ID, nil)
	s.Require().Equal(http.StatusOK, status)
	s.True(decodeData[dto.LikeResponse](s, resp).IsLiked)

	status, _ = bob.json(http.MethodPost, "/api/v1/comment/"+video.ID, dto.ContentRequest{Content: "Nice"})
	s.Require().Equal(http.StatusCreated, status)

	status, resp = alice.json(http.MethodGet, "/api/v1/comment/"+video.ID, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Contains(string(resp.Data), `"totalComments":1`)

	status, _ = bob.json(http.MethodPatch, "/api/v1/videos/toggle/publish/"+video.ID, nil)
	s.Equal(http.StatusForbidden, status)

	status, resp = bob.json(http.MethodPatch, "/api/v1/subscription/"+alice.user.ID, nil)
	s.Require().Equal(http.StatusOK, status)
	s.True(decodeData[dto.SubscriptionResponse](s, resp).IsSubscribed)

	status, resp = alice.json(http.MethodGet, "/api/v1/dashboard/stats", nil)
	s.Require().Equal(http.StatusOK, status)
	stats := decodeData[domain.ChannelStats](s, resp)
	s.Equal(int64(1), stats.TotalVideos)
	s.Equal(int64(1), stats.Subscribers)

	status, _ = alice.json(http.MethodDelete, "/api/v1/videos/"+video.ID, nil)
	s.Require().Equal(http.StatusOK, status)
	s.False(s.infra.storage.has(video.VideoFile))
}

func (s *Suite) TestVideoPagination() {
	alice := s.signUp("alice")

	for _, title := range []string{"First", "Second", "Third"} {
		status, resp := alice.multipart(http.MethodPost, "/api/v1/videos",
			map[string]string{"title": title, "description": title + " upload"},
			map[string]string{"videoFile": title + ".mp4", "thumbnail": title + ".png"},
		)
		s.Require().Equal(http.StatusCreated, status, resp.Message)
	}

	type videoPage struct {
		Videos      []domain.Video `json:"videos"`
		TotalVideos int64          `json:"totalVideos"`
		Page        int            `json:"page"`
		HasPrevPage bool           `json:"hasPrevPage"`
		HasNextPage bool           `json:"hasNextPage"`
	}
	list := "/api/v1/videos?userId=" + alice.user.ID

	status, resp := alice.json(http.MethodGet, list+"&page=2&limit=1&sortBy=createdAt", nil)
	s.Require().Equal(http.StatusOK, status, resp.Message)
	page := decodeData[videoPage](s, resp)
	s.Require().Len(page.Videos, 1)
	s.Equal("Second", page.Videos[0].Title)
	s.Equal(int64(3), page.TotalVideos)
	s.True(page.HasPrevPage)
	s.True(page.HasNextPage)

	status, resp = alice.json(http.MethodGet, list+"&page=9&limit=1", nil)
	s.Require().Equal(http.StatusOK, status, resp.Message)
	page = decodeData[videoPage](s, resp)
	s.Empty(page.Videos)
	s.Equal(int64(3), page.TotalVideos)
	s.False(page.HasNextPage)

	status, resp = alice.json(http.MethodGet, list+"&page=922337203685477580&limit=100", nil)
	s.Require().Equal(http.StatusOK, status, resp.Message)
	page = decodeData[videoPage](s, resp)
	s.Empty(page.Videos)
	s.Equal(int64(3), page.TotalVideos)
}

func (s *Suite) TestPlaylistMembership() {
	alice := s.signUp("alice")

	status, resp := alice.multipart(http.MethodPost, "/api/v1/videos",
		map[string]string{"title": "Clip", "description": "A clip"},
		map[string]string{"videoFile": "clip.mp4", "thumbnail": "clip.png"},
	)
	s.Require().Equal(http.StatusCreated, status, resp.Message)
	video := decodeData[domain.Video](s, resp)

	name, description := "Favourites", "Best ones"
	status, resp = alice.json(http.MethodPost, "/api/v1/playlist", dto.PlaylistRequest{Name: &name, Description: &description})
	s.Require().Equal(http.StatusCreated, status)
	playlist := decodeData[domain.Playlist](s, resp)

	path := "/api/v1/playlist/add/" + video.ID + "/" + playlist.ID
	status, resp = alice.json(http.MethodPatch, path, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(1, decodeData[domain.PlaylistDetail](s, resp).TotalVideos)

	status, resp = alice.json(http.MethodPatch, path, nil)
	s.Equal(http.StatusBadRequest, status)
	s.Equal("Video already in playlist", resp.Message)

	status, resp = alice.json(http.MethodPatch, "/api/v1/playlist/remove/"+video.ID+"/"+playlist.ID, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(0, decodeData[domain.PlaylistDetail](s, resp).TotalVideos)
}
